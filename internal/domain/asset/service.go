package asset

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/assethub/hub-api/internal/domain/coin"
)

// Service owns publish flows and their reward triggers.
type Service struct {
	repo  *Repository
	coins *coin.Service
}

func NewService(repo *Repository, coins *coin.Service) *Service {
	return &Service{repo: repo, coins: coins}
}

// Publish creates the asset on first publish or bumps the version when the
// author already has an asset of that name. First publish pays the author
// the publish_asset catalog entry, a version bump pays publish_version.
func (s *Service) Publish(ctx context.Context, authorID uuid.UUID, name, displayName, version string) (*Asset, error) {
	existing, err := s.repo.FindByAuthorAndName(ctx, authorID, name)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		if existing.Version != version {
			if err := s.repo.UpdateVersion(ctx, existing.ID, version); err != nil {
				return nil, err
			}
			s.coins.Award(ctx, authorID, coin.EventPublishVersion, existing.ID)
			log.Info().Str("asset_id", existing.ID).Str("version", version).Msg("asset version published")
		}
		return s.repo.GetByID(ctx, existing.ID)
	}

	a := &Asset{
		ID:          newAssetID(),
		Name:        name,
		DisplayName: displayName,
		AuthorID:    &authorID,
		Version:     version,
	}
	if err := s.repo.Create(ctx, a); err != nil {
		return nil, err
	}

	s.coins.Award(ctx, authorID, coin.EventPublishAsset, a.ID)

	log.Info().Str("asset_id", a.ID).Str("author_id", authorID.String()).Msg("asset published")
	return s.repo.GetByID(ctx, a.ID)
}

// GetByID returns an asset.
func (s *Service) GetByID(ctx context.Context, id string) (*Asset, error) {
	return s.repo.GetByID(ctx, id)
}

// SyncGithubStars records an externally synced star count.
func (s *Service) SyncGithubStars(ctx context.Context, id string, stars int64) error {
	if err := s.repo.SetGithubStars(ctx, id, stars); err != nil {
		return err
	}
	log.Info().Str("asset_id", id).Int64("github_stars", stars).Msg("github stars synced")
	return nil
}
