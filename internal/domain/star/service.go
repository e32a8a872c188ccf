package star

import (
	"context"

	"github.com/google/uuid"
)

// Status is the state returned by every star operation: whether the caller's
// star exists, whether this call changed anything, and the merged total.
type Status struct {
	Starred bool  `json:"starred"`
	Changed bool  `json:"changed"`
	Total   int64 `json:"total_stars"`
}

type Service struct {
	repo *Repository
}

func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

// Star adds a manual star. Re-starring is a no-op reported as Changed=false.
func (s *Service) Star(ctx context.Context, userID uuid.UUID, assetID string) (Status, error) {
	created, err := s.repo.Add(ctx, userID, assetID, SourceManual)
	if err != nil {
		return Status{}, err
	}
	total, err := s.repo.TotalByAsset(ctx, assetID)
	if err != nil {
		return Status{}, err
	}
	return Status{Starred: true, Changed: created, Total: total}, nil
}

// Unstar removes the user's star regardless of its source.
func (s *Service) Unstar(ctx context.Context, userID uuid.UUID, assetID string) (Status, error) {
	deleted, err := s.repo.Remove(ctx, userID, assetID)
	if err != nil {
		return Status{}, err
	}
	total, err := s.repo.TotalByAsset(ctx, assetID)
	if err != nil {
		return Status{}, err
	}
	return Status{Starred: false, Changed: deleted, Total: total}, nil
}

// GetStatus reports the caller's star state and the merged total.
func (s *Service) GetStatus(ctx context.Context, userID uuid.UUID, assetID string) (Status, error) {
	starred, err := s.repo.IsStarred(ctx, userID, assetID)
	if err != nil {
		return Status{}, err
	}
	total, err := s.repo.TotalByAsset(ctx, assetID)
	if err != nil {
		return Status{}, err
	}
	return Status{Starred: starred, Total: total}, nil
}

// TotalStars returns github_stars + local membership for an asset.
func (s *Service) TotalStars(ctx context.Context, assetID string) (int64, error) {
	return s.repo.TotalByAsset(ctx, assetID)
}

// UserStarCount returns the locally owned membership count, without the
// externally synced figure.
func (s *Service) UserStarCount(ctx context.Context, assetID string) (int64, error) {
	return s.repo.CountByAsset(ctx, assetID)
}

// ListStarred returns the user's stars, newest first.
func (s *Service) ListStarred(ctx context.Context, userID uuid.UUID) ([]Star, error) {
	return s.repo.ListByUser(ctx, userID)
}
