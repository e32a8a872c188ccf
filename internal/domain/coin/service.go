package coin

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

// Service is the single mutation surface for user balances. Write calls are
// fire-and-forget: callers never branch on a reward outcome, so failures are
// logged here instead of returned.
type Service struct {
	repo *Repository
}

func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

// AddCoins applies a signed amount to one balance and appends the event.
// A missing user or store failure is a logged no-op.
func (s *Service) AddCoins(ctx context.Context, userID uuid.UUID, currency Currency, amount int64, event string, refID string) {
	err := s.repo.Add(ctx, userID, currency, amount, event, refPtr(refID))
	if err == nil {
		return
	}

	if errors.Is(err, ErrUserNotFound) {
		// Deliberate silent no-op toward the caller; loud here so abuse or
		// schema drift stays observable.
		log.Warn().
			Str("user_id", userID.String()).
			Str("event", event).
			Str("currency", string(currency)).
			Int64("amount", amount).
			Msg("coin reward dropped: user missing")
		return
	}

	log.Error().Err(err).
		Str("user_id", userID.String()).
		Str("event", event).
		Msg("coin reward failed")
}

// Award pays both catalog deltas of an event, skipping zero deltas.
func (s *Service) Award(ctx context.Context, userID uuid.UUID, event string, refID string) {
	reward, ok := Lookup(event)
	if !ok {
		log.Error().Str("event", event).Msg("reward skipped: not in catalog")
		return
	}

	if reward.Reputation != 0 {
		s.AddCoins(ctx, userID, CurrencyReputation, reward.Reputation, event, refID)
	}
	if reward.Credit != 0 {
		s.AddCoins(ctx, userID, CurrencyCredit, reward.Credit, event, refID)
	}
}

// AwardTx is Award composed into an external transaction. Unlike the
// fire-and-forget surface it returns an error: a failed reward must roll
// back the unit it is part of.
func (s *Service) AwardTx(ctx context.Context, tx *sqlx.Tx, userID uuid.UUID, event string, refID string) error {
	reward, ok := Lookup(event)
	if !ok {
		return ErrUnknownEvent
	}

	ref := refPtr(refID)
	if reward.Reputation != 0 {
		if err := s.repo.AddTx(ctx, tx, userID, CurrencyReputation, reward.Reputation, event, ref); err != nil {
			return err
		}
	}
	if reward.Credit != 0 {
		if err := s.repo.AddTx(ctx, tx, userID, CurrencyCredit, reward.Credit, event, ref); err != nil {
			return err
		}
	}
	return nil
}

// TrySpendTx deducts a credit toll inside an external transaction, skipping
// silently when the balance cannot cover it.
func (s *Service) TrySpendTx(ctx context.Context, tx *sqlx.Tx, userID uuid.UUID, amount int64, event string, refID string) (bool, error) {
	spent, err := s.repo.TrySpendTx(ctx, tx, userID, amount, event, refPtr(refID))
	if err != nil {
		return false, err
	}
	if !spent {
		log.Debug().
			Str("user_id", userID.String()).
			Str("event", event).
			Msg("credit toll skipped: insufficient balance")
	}
	return spent, nil
}

// GetBalances returns the user's balance pair.
func (s *Service) GetBalances(ctx context.Context, userID uuid.UUID) (Balances, error) {
	return s.repo.Balances(ctx, userID)
}

// GetHistory returns recent events, optionally filtered by currency.
func (s *Service) GetHistory(ctx context.Context, userID uuid.UUID, currency *Currency, limit int) ([]Event, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	return s.repo.History(ctx, userID, currency, limit)
}

// ListEvents returns one page of a user's events for activity timelines.
func (s *Service) ListEvents(ctx context.Context, userID uuid.UUID, page, pageSize int) ([]Event, int, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return s.repo.ListEvents(ctx, userID, pageSize, (page-1)*pageSize)
}

func refPtr(refID string) *string {
	if refID == "" {
		return nil
	}
	return &refID
}
