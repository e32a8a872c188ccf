package issue

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type Status string

const (
	StatusOpen   Status = "open"
	StatusClosed Status = "closed"
)

type Issue struct {
	ID        uuid.UUID      `db:"id" json:"id"`
	AssetID   string         `db:"asset_id" json:"asset_id"`
	AuthorID  uuid.UUID      `db:"author_id" json:"author_id"`
	Title     string         `db:"title" json:"title"`
	Body      string         `db:"body" json:"body"`
	Status    Status         `db:"status" json:"status"`
	Labels    pq.StringArray `db:"labels" json:"labels"`
	CreatedAt time.Time      `db:"created_at" json:"created_at"`
}
