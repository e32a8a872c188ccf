package user

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/assethub/hub-api/internal/domain/coin"
)

// Service handles registration and profile reads.
type Service struct {
	repo  *Repository
	coins *coin.Service
}

func NewService(repo *Repository, coins *coin.Service) *Service {
	return &Service{repo: repo, coins: coins}
}

// Register creates the account and pays the registration bonus through the
// ledger, so the welcome credit shows up as a replayable event rather than a
// seeded column value.
func (s *Service) Register(ctx context.Context, name string, email *string) (*User, error) {
	u := &User{
		ID:    uuid.New(),
		Name:  name,
		Email: email,
	}
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}

	s.coins.Award(ctx, u.ID, coin.EventRegister, "")

	log.Info().Str("user_id", u.ID.String()).Str("name", name).Msg("user registered")
	return s.repo.GetByID(ctx, u.ID)
}

// GetByID returns a user profile.
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*User, error) {
	return s.repo.GetByID(ctx, id)
}

// Exists is the user-existence capability consumed by the reward engines.
func (s *Service) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	return s.repo.Exists(ctx, id)
}
