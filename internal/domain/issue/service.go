package issue

import (
	"context"

	"github.com/google/uuid"

	"github.com/assethub/hub-api/internal/domain/coin"
)

type Service struct {
	repo  *Repository
	coins *coin.Service
}

func NewService(repo *Repository, coins *coin.Service) *Service {
	return &Service{repo: repo, coins: coins}
}

// Create files an issue and pays the reporter's reward.
func (s *Service) Create(ctx context.Context, authorID uuid.UUID, assetID, title, body string, labels []string) (*Issue, error) {
	if labels == nil {
		labels = []string{}
	}
	i := &Issue{
		ID:       uuid.New(),
		AssetID:  assetID,
		AuthorID: authorID,
		Title:    title,
		Body:     body,
		Labels:   labels,
	}
	if err := s.repo.Create(ctx, i); err != nil {
		return nil, err
	}
	s.coins.Award(ctx, authorID, coin.EventSubmitIssue, assetID)
	return i, nil
}

func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*Issue, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) SetStatus(ctx context.Context, id uuid.UUID, status Status) error {
	return s.repo.SetStatus(ctx, id, status)
}

func (s *Service) ListByAsset(ctx context.Context, assetID string, status *Status, page, pageSize int) ([]Issue, int, error) {
	return s.repo.ListByAsset(ctx, assetID, status, pageSize, (page-1)*pageSize)
}
