package coin

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// columns whitelists the balance column per currency; currency values never
// reach SQL text any other way.
var columns = map[Currency]string{
	CurrencyReputation: "reputation",
	CurrencyCredit:     "credit",
}

// Repository owns the balance pair on users and the coin_events log.
type Repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) beginTx(ctx context.Context) (*sqlx.Tx, error) {
	return r.db.BeginTxx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
}

// Add applies a signed amount to one balance and appends the matching event,
// as one transaction. The balance floors at zero.
func (r *Repository) Add(ctx context.Context, userID uuid.UUID, currency Currency, amount int64, event string, refID *string) error {
	tx, err := r.beginTx(ctx)
	if err != nil {
		return fmt.Errorf("%w: begin tx: %v", ErrInternal, err)
	}
	defer tx.Rollback()

	if err := r.AddTx(ctx, tx, userID, currency, amount, event, refID); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: commit tx: %v", ErrInternal, err)
	}
	return nil
}

// AddTx is Add composed into an external transaction. The caller commits or
// rolls back; a returned error must abort the whole unit.
func (r *Repository) AddTx(ctx context.Context, tx *sqlx.Tx, userID uuid.UUID, currency Currency, amount int64, event string, refID *string) error {
	col, ok := columns[currency]
	if !ok {
		return ErrInvalidCurrency
	}

	// Single atomic update; no read-then-write pair to lose under concurrency.
	var balance int64
	query := fmt.Sprintf(`
		UPDATE users
		SET %s = GREATEST(0, %s + $2), updated_at = now()
		WHERE id = $1
		RETURNING %s
	`, col, col, col)
	if err := tx.GetContext(ctx, &balance, query, userID, amount); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrUserNotFound
		}
		return fmt.Errorf("%w: update balance: %v", ErrInternal, err)
	}

	return r.insertEvent(ctx, tx, userID, currency, amount, event, refID, balance)
}

// TrySpendTx deducts amount from the credit balance only when it covers the
// full amount. Returns false with no event written when it does not.
func (r *Repository) TrySpendTx(ctx context.Context, tx *sqlx.Tx, userID uuid.UUID, amount int64, event string, refID *string) (bool, error) {
	var balance int64
	err := tx.GetContext(ctx, &balance, `
		UPDATE users
		SET credit = credit - $2, updated_at = now()
		WHERE id = $1 AND credit >= $2
		RETURNING credit
	`, userID, amount)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: spend credit: %v", ErrInternal, err)
	}

	if err := r.insertEvent(ctx, tx, userID, CurrencyCredit, -amount, event, refID, balance); err != nil {
		return false, err
	}
	return true, nil
}

func (r *Repository) insertEvent(ctx context.Context, tx *sqlx.Tx, userID uuid.UUID, currency Currency, amount int64, event string, refID *string, balanceAfter int64) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO coin_events (user_id, currency, amount, event, ref_id, balance_after)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, userID, string(currency), amount, event, refID, balanceAfter)
	if err != nil {
		return fmt.Errorf("%w: insert event: %v", ErrInternal, err)
	}
	return nil
}

// Balances returns the user's balance pair.
func (r *Repository) Balances(ctx context.Context, userID uuid.UUID) (Balances, error) {
	var b Balances
	err := r.db.GetContext(ctx, &b, `SELECT reputation, credit FROM users WHERE id = $1`, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Balances{}, ErrUserNotFound
		}
		return Balances{}, fmt.Errorf("%w: get balances: %v", ErrInternal, err)
	}
	return b, nil
}

// History returns the newest events for a user, optionally filtered by
// currency, newest first.
func (r *Repository) History(ctx context.Context, userID uuid.UUID, currency *Currency, limit int) ([]Event, error) {
	if limit <= 0 {
		limit = 50
	}

	events := make([]Event, 0)
	if currency != nil {
		if !currency.Valid() {
			return nil, ErrInvalidCurrency
		}
		err := r.db.SelectContext(ctx, &events, `
			SELECT id, user_id, currency, amount, event, ref_id, balance_after, created_at
			FROM coin_events
			WHERE user_id = $1 AND currency = $2
			ORDER BY id DESC
			LIMIT $3
		`, userID, string(*currency), limit)
		if err != nil {
			return nil, fmt.Errorf("%w: list history: %v", ErrInternal, err)
		}
		return events, nil
	}

	err := r.db.SelectContext(ctx, &events, `
		SELECT id, user_id, currency, amount, event, ref_id, balance_after, created_at
		FROM coin_events
		WHERE user_id = $1
		ORDER BY id DESC
		LIMIT $2
	`, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: list history: %v", ErrInternal, err)
	}
	return events, nil
}

// ListEvents returns one page of a user's events plus the total count.
func (r *Repository) ListEvents(ctx context.Context, userID uuid.UUID, limit, offset int) ([]Event, int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM coin_events WHERE user_id = $1`, userID); err != nil {
		return nil, 0, fmt.Errorf("%w: count events: %v", ErrInternal, err)
	}

	events := make([]Event, 0)
	err := r.db.SelectContext(ctx, &events, `
		SELECT id, user_id, currency, amount, event, ref_id, balance_after, created_at
		FROM coin_events
		WHERE user_id = $1
		ORDER BY id DESC
		LIMIT $2 OFFSET $3
	`, userID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: list events: %v", ErrInternal, err)
	}
	return events, total, nil
}
