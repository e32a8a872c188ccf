package install

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/assethub/hub-api/internal/domain/coin"
	"github.com/assethub/hub-api/internal/domain/star"
	"github.com/assethub/hub-api/internal/pkg/ratelimit"
)

const installToll = 1

type Service struct {
	repo  *Repository
	stars *star.Repository
	coins *coin.Service

	// Anonymous installs can mint author rewards only when the policy is
	// enabled, and then only under the per-asset hourly cap.
	anonReward    bool
	anonHourlyCap int
	limiter       *ratelimit.Limiter
}

func NewService(repo *Repository, stars *star.Repository, coins *coin.Service, anonReward bool, anonHourlyCap int, limiter *ratelimit.Limiter) *Service {
	return &Service{
		repo:          repo,
		stars:         stars,
		coins:         coins,
		anonReward:    anonReward,
		anonHourlyCap: anonHourlyCap,
		limiter:       limiter,
	}
}

// RecordInstall applies one install. For a known user the counter bump,
// auto-star, toll, version upsert and author reward commit as a single
// transaction; a same-version re-install changes nothing beyond the counter.
// Anonymous installs only bump the counter, with the author reward gated by
// policy and rate limit.
func (s *Service) RecordInstall(ctx context.Context, assetID string, userID *uuid.UUID) (*Result, error) {
	if userID == nil {
		return s.recordAnonymous(ctx, assetID)
	}
	return s.recordForUser(ctx, assetID, *userID)
}

func (s *Service) recordForUser(ctx context.Context, assetID string, userID uuid.UUID) (*Result, error) {
	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	asset, err := s.repo.IncrementDownloadsTx(ctx, tx, assetID)
	if err != nil {
		return nil, err
	}

	if _, err := s.stars.AddTx(ctx, tx, userID, assetID, star.SourceDownload); err != nil {
		return nil, err
	}

	tollPaid, err := s.coins.TrySpendTx(ctx, tx, userID, installToll, coin.EventInstallAsset, assetID)
	if err != nil {
		return nil, err
	}

	changed, err := s.repo.UpsertTx(ctx, tx, userID, assetID, asset.Version)
	if err != nil {
		return nil, err
	}

	if changed && asset.AuthorID != nil && *asset.AuthorID != userID {
		if err := s.coins.AwardTx(ctx, tx, *asset.AuthorID, coin.EventAssetInstalled, assetID); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return &Result{
		AssetID:         assetID,
		Version:         asset.Version,
		Downloads:       asset.Downloads,
		FirstForVersion: changed,
		TollPaid:        tollPaid,
	}, nil
}

func (s *Service) recordAnonymous(ctx context.Context, assetID string) (*Result, error) {
	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	asset, err := s.repo.IncrementDownloadsTx(ctx, tx, assetID)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}

	if s.anonReward && asset.AuthorID != nil {
		if s.limiter.Allow(ctx, "anon_install:"+assetID, s.anonHourlyCap) {
			s.coins.Award(ctx, *asset.AuthorID, coin.EventAssetInstalled, assetID)
		} else {
			log.Debug().
				Str("asset_id", assetID).
				Msg("anonymous install reward capped")
		}
	}

	return &Result{
		AssetID:   assetID,
		Version:   asset.Version,
		Downloads: asset.Downloads,
	}, nil
}

// GetInstall returns the user's install row for an asset, nil when absent.
func (s *Service) GetInstall(ctx context.Context, userID uuid.UUID, assetID string) (*Install, error) {
	return s.repo.Get(ctx, userID, assetID)
}

// ListInstalls returns the user's installs.
func (s *Service) ListInstalls(ctx context.Context, userID uuid.UUID) ([]Install, error) {
	return s.repo.ListByUser(ctx, userID)
}
