package install

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

// AssetSnapshot is what the install flow needs to know about the asset row
// it just locked.
type AssetSnapshot struct {
	AuthorID  *uuid.UUID `db:"author_id"`
	Version   string     `db:"version"`
	Downloads int64      `db:"downloads"`
}

// IncrementDownloadsTx bumps the asset counter and returns the fields the
// install flow needs. The UPDATE takes the row lock, which serializes
// concurrent installs of the same asset.
func (r *Repository) IncrementDownloadsTx(ctx context.Context, tx *sqlx.Tx, assetID string) (*AssetSnapshot, error) {
	var row AssetSnapshot
	err := tx.GetContext(ctx, &row, `
		UPDATE assets
		SET downloads = downloads + 1, updated_at = now()
		WHERE id = $1
		RETURNING author_id, version, downloads
	`, assetID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAssetNotFound
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// UpsertTx records the installed version and reports whether the version
// actually changed. The DISTINCT guard makes a same-version re-install
// affect zero rows, so the caller can skip the author reward.
func (r *Repository) UpsertTx(ctx context.Context, tx *sqlx.Tx, userID uuid.UUID, assetID, version string) (bool, error) {
	result, err := tx.ExecContext(ctx, `
		INSERT INTO user_installs (user_id, asset_id, last_version)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, asset_id) DO UPDATE
		SET last_version = EXCLUDED.last_version, updated_at = now()
		WHERE user_installs.last_version IS DISTINCT FROM EXCLUDED.last_version
	`, userID, assetID, version)
	if err != nil {
		return false, err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}

// Get returns the install row, or nil when the user never installed the asset.
func (r *Repository) Get(ctx context.Context, userID uuid.UUID, assetID string) (*Install, error) {
	var inst Install
	err := r.db.GetContext(ctx, &inst, `
		SELECT user_id, asset_id, last_version, created_at, updated_at
		FROM user_installs
		WHERE user_id = $1 AND asset_id = $2
	`, userID, assetID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &inst, nil
}

// ListByUser returns a user's installs, most recently updated first.
func (r *Repository) ListByUser(ctx context.Context, userID uuid.UUID) ([]Install, error) {
	installs := make([]Install, 0)
	err := r.db.SelectContext(ctx, &installs, `
		SELECT user_id, asset_id, last_version, created_at, updated_at
		FROM user_installs
		WHERE user_id = $1
		ORDER BY updated_at DESC
	`, userID)
	return installs, err
}
