package asset

import (
	"time"

	"github.com/google/uuid"
)

// Asset is the marketplace listing the reward engines consult for authorship,
// current version and the externally synced star count. Downloads is a raw
// usage counter, independent of any reward outcome.
type Asset struct {
	ID          string     `db:"id" json:"id"`
	Name        string     `db:"name" json:"name"`
	DisplayName string     `db:"display_name" json:"display_name"`
	AuthorID    *uuid.UUID `db:"author_id" json:"author_id,omitempty"`
	Version     string     `db:"version" json:"version"`
	Downloads   int64      `db:"downloads" json:"downloads"`
	GithubStars int64      `db:"github_stars" json:"github_stars"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at" json:"updated_at"`
}
