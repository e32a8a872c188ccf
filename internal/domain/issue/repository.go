package issue

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

type Repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(ctx context.Context, i *Issue) error {
	err := r.db.GetContext(ctx, i, `
		INSERT INTO issues (id, asset_id, author_id, title, body, labels)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, asset_id, author_id, title, body, status, labels, created_at
	`, i.ID, i.AssetID, i.AuthorID, i.Title, i.Body, i.Labels)
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23503" {
		return ErrAssetNotFound
	}
	return err
}

func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*Issue, error) {
	var i Issue
	err := r.db.GetContext(ctx, &i, `
		SELECT id, asset_id, author_id, title, body, status, labels, created_at
		FROM issues
		WHERE id = $1
	`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrIssueNotFound
	}
	if err != nil {
		return nil, err
	}
	return &i, nil
}

func (r *Repository) SetStatus(ctx context.Context, id uuid.UUID, status Status) error {
	result, err := r.db.ExecContext(ctx, `
		UPDATE issues SET status = $2 WHERE id = $1
	`, id, string(status))
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrIssueNotFound
	}
	return nil
}

func (r *Repository) ListByAsset(ctx context.Context, assetID string, status *Status, limit, offset int) ([]Issue, int, error) {
	var total int
	issues := make([]Issue, 0)

	if status != nil {
		if err := r.db.GetContext(ctx, &total, `
			SELECT COUNT(*) FROM issues WHERE asset_id = $1 AND status = $2
		`, assetID, string(*status)); err != nil {
			return nil, 0, err
		}
		err := r.db.SelectContext(ctx, &issues, `
			SELECT id, asset_id, author_id, title, body, status, labels, created_at
			FROM issues
			WHERE asset_id = $1 AND status = $2
			ORDER BY created_at DESC
			LIMIT $3 OFFSET $4
		`, assetID, string(*status), limit, offset)
		return issues, total, err
	}

	if err := r.db.GetContext(ctx, &total, `
		SELECT COUNT(*) FROM issues WHERE asset_id = $1
	`, assetID); err != nil {
		return nil, 0, err
	}
	err := r.db.SelectContext(ctx, &issues, `
		SELECT id, asset_id, author_id, title, body, status, labels, created_at
		FROM issues
		WHERE asset_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`, assetID, limit, offset)
	return issues, total, err
}
