package star

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// Repository owns star membership. The compound primary key makes inserts
// race-safe: a concurrent duplicate lands on the conflict clause instead of
// slipping past a read-then-insert check.
type Repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

// Add inserts a star if absent and reports whether a row was created.
func (r *Repository) Add(ctx context.Context, userID uuid.UUID, assetID string, source Source) (bool, error) {
	result, err := r.db.ExecContext(ctx, `
		INSERT INTO user_stars (user_id, asset_id, source)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, asset_id) DO NOTHING
	`, userID, assetID, string(source))
	if err != nil {
		return false, err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}

// AddTx is Add inside an external transaction (used by the install engine's
// auto-star).
func (r *Repository) AddTx(ctx context.Context, tx *sqlx.Tx, userID uuid.UUID, assetID string, source Source) (bool, error) {
	result, err := tx.ExecContext(ctx, `
		INSERT INTO user_stars (user_id, asset_id, source)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, asset_id) DO NOTHING
	`, userID, assetID, string(source))
	if err != nil {
		return false, err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}

// Remove deletes a star and reports whether anything was deleted.
func (r *Repository) Remove(ctx context.Context, userID uuid.UUID, assetID string) (bool, error) {
	result, err := r.db.ExecContext(ctx, `
		DELETE FROM user_stars WHERE user_id = $1 AND asset_id = $2
	`, userID, assetID)
	if err != nil {
		return false, err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}

// IsStarred reports whether the user starred the asset.
func (r *Repository) IsStarred(ctx context.Context, userID uuid.UUID, assetID string) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists, `
		SELECT EXISTS (SELECT 1 FROM user_stars WHERE user_id = $1 AND asset_id = $2)
	`, userID, assetID)
	return exists, err
}

// CountByAsset returns the locally owned membership count.
func (r *Repository) CountByAsset(ctx context.Context, assetID string) (int64, error) {
	var count int64
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM user_stars WHERE asset_id = $1`, assetID)
	return count, err
}

// TotalByAsset merges the externally synced count with live membership in a
// single query, so the figure can never drift from the star rows.
func (r *Repository) TotalByAsset(ctx context.Context, assetID string) (int64, error) {
	var total int64
	err := r.db.GetContext(ctx, &total, `
		SELECT a.github_stars + COALESCE(s.cnt, 0)
		FROM assets a
		LEFT JOIN (
			SELECT asset_id, COUNT(*) AS cnt
			FROM user_stars
			WHERE asset_id = $1
			GROUP BY asset_id
		) s ON s.asset_id = a.id
		WHERE a.id = $1
	`, assetID)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	return total, err
}

// ListByUser lists a user's stars, newest first.
func (r *Repository) ListByUser(ctx context.Context, userID uuid.UUID) ([]Star, error) {
	stars := make([]Star, 0)
	err := r.db.SelectContext(ctx, &stars, `
		SELECT user_id, asset_id, source, created_at
		FROM user_stars
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	return stars, err
}
