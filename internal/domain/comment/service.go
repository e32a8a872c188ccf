package comment

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

// Create stores a comment and pays the author's writing reward.
func (s *Service) Create(ctx context.Context, userID uuid.UUID, assetID, content string, rating int) (*Comment, error) {
	c := &Comment{
		ID:      uuid.New(),
		AssetID: assetID,
		UserID:  userID,
		Content: content,
		Rating:  rating,
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	s.coins.Award(ctx, userID, coin.EventWriteComment, assetID)
	return c, nil
}

func (s *Service) ListByAsset(ctx context.Context, assetID string, page, pageSize int) ([]Comment, int, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return s.repo.ListByAsset(ctx, assetID, pageSize, (page-1)*pageSize)
}
