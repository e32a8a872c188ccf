package asset

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// Repository provides asset persistence.
type Repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new asset.
func (r *Repository) Create(ctx context.Context, a *Asset) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO assets (id, name, display_name, author_id, version, downloads, github_stars, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, 0, 0, now(), now())
	`, a.ID, a.Name, a.DisplayName, a.AuthorID, a.Version)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return ErrNameTaken
		}
		return err
	}
	return nil
}

// GetByID returns an asset by id.
func (r *Repository) GetByID(ctx context.Context, id string) (*Asset, error) {
	var a Asset
	err := r.db.GetContext(ctx, &a, `SELECT * FROM assets WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrAssetNotFound
		}
		return nil, err
	}
	return &a, nil
}

// FindByAuthorAndName returns an author's asset by name, nil when absent.
func (r *Repository) FindByAuthorAndName(ctx context.Context, authorID uuid.UUID, name string) (*Asset, error) {
	var a Asset
	err := r.db.GetContext(ctx, &a, `SELECT * FROM assets WHERE author_id = $1 AND name = $2`, authorID, name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// UpdateVersion bumps the current version.
func (r *Repository) UpdateVersion(ctx context.Context, id, version string) error {
	result, err := r.db.ExecContext(ctx, `
		UPDATE assets SET version = $2, updated_at = now() WHERE id = $1
	`, id, version)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrAssetNotFound
	}
	return nil
}

// SetGithubStars stores the externally synced star count. The total-star
// figure is always computed as this value plus the live membership count,
// never cached.
func (r *Repository) SetGithubStars(ctx context.Context, id string, stars int64) error {
	result, err := r.db.ExecContext(ctx, `
		UPDATE assets SET github_stars = $2, updated_at = now() WHERE id = $1
	`, id, stars)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrAssetNotFound
	}
	return nil
}
