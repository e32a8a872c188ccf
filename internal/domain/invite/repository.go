package invite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type Repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) BeginTx(ctx context.Context) (*sqlx.Tx, error) {
	return r.db.BeginTxx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
}

// GetByCode returns a code without locking, for read-only validation.
func (r *Repository) GetByCode(ctx context.Context, code string) (*Code, error) {
	var c Code
	err := r.db.GetContext(ctx, &c, `
		SELECT code, created_by, max_uses, use_count, type, expires_at, used_at, created_at
		FROM invite_codes
		WHERE code = $1
	`, code)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCodeNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// LockCodeTx loads a code under FOR UPDATE so concurrent activations of the
// same code serialize on the row.
func (r *Repository) LockCodeTx(ctx context.Context, tx *sqlx.Tx, code string) (*Code, error) {
	var c Code
	err := tx.GetContext(ctx, &c, `
		SELECT code, created_by, max_uses, use_count, type, expires_at, used_at, created_at
		FROM invite_codes
		WHERE code = $1
		FOR UPDATE
	`, code)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCodeNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// LockUserInviteTx loads the user's activated code under FOR UPDATE, so two
// concurrent activations by the same user cannot both pass the check.
func (r *Repository) LockUserInviteTx(ctx context.Context, tx *sqlx.Tx, userID uuid.UUID) (*string, error) {
	var inviteCode *string
	err := tx.GetContext(ctx, &inviteCode, `
		SELECT invite_code FROM users WHERE id = $1 FOR UPDATE
	`, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return inviteCode, nil
}

// HasActivated reports whether the user already redeemed a code.
func (r *Repository) HasActivated(ctx context.Context, userID uuid.UUID) (bool, error) {
	var activated bool
	err := r.db.GetContext(ctx, &activated, `
		SELECT invite_code IS NOT NULL FROM users WHERE id = $1
	`, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return false, ErrUserNotFound
	}
	return activated, err
}

// ConsumeTx spends one use of a locked code. The guard re-checks the budget
// even though the caller holds the row lock.
func (r *Repository) ConsumeTx(ctx context.Context, tx *sqlx.Tx, code string) error {
	result, err := tx.ExecContext(ctx, `
		UPDATE invite_codes
		SET use_count = use_count + 1, used_at = now()
		WHERE code = $1 AND use_count < max_uses
	`, code)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrCodeExhausted
	}
	return nil
}

// SetUserCodeTx records which code the user activated.
func (r *Repository) SetUserCodeTx(ctx context.Context, tx *sqlx.Tx, userID uuid.UUID, code string) error {
	result, err := tx.ExecContext(ctx, `
		UPDATE users SET invite_code = $2, updated_at = now() WHERE id = $1
	`, userID, code)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrUserNotFound
	}
	return nil
}

// InsertTx adds a freshly minted code and reports whether it landed. A
// collision must not raise a statement error: that would abort the enclosing
// transaction and no retry could follow, so duplicates fall through the
// conflict clause instead.
func (r *Repository) InsertTx(ctx context.Context, tx *sqlx.Tx, c *Code) (bool, error) {
	result, err := tx.ExecContext(ctx, `
		INSERT INTO invite_codes (code, created_by, max_uses, type, expires_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (code) DO NOTHING
	`, c.Code, c.CreatedBy, c.MaxUses, string(c.Type), c.ExpiresAt)
	if err != nil {
		return false, err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}

// ListByCreator returns the codes a user minted, newest first.
func (r *Repository) ListByCreator(ctx context.Context, createdBy string) ([]Code, error) {
	codes := make([]Code, 0)
	err := r.db.SelectContext(ctx, &codes, `
		SELECT code, created_by, max_uses, use_count, type, expires_at, used_at, created_at
		FROM invite_codes
		WHERE created_by = $1
		ORDER BY created_at DESC
	`, createdBy)
	return codes, err
}
