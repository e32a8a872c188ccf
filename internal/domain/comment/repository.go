package comment

import (
	"context"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

type Repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(ctx context.Context, c *Comment) error {
	err := r.db.GetContext(ctx, c, `
		INSERT INTO comments (id, asset_id, user_id, content, rating)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, asset_id, user_id, content, rating, created_at
	`, c.ID, c.AssetID, c.UserID, c.Content, c.Rating)
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23503" {
		return ErrAssetNotFound
	}
	return err
}

func (r *Repository) ListByAsset(ctx context.Context, assetID string, limit, offset int) ([]Comment, int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM comments WHERE asset_id = $1`, assetID); err != nil {
		return nil, 0, err
	}
	comments := make([]Comment, 0)
	err := r.db.SelectContext(ctx, &comments, `
		SELECT id, asset_id, user_id, content, rating, created_at
		FROM comments
		WHERE asset_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`, assetID, limit, offset)
	return comments, total, err
}
