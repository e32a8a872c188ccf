package star

import (
	"time"

	"github.com/google/uuid"
)

// Source records how a star came to exist. A later star of either source
// never duplicates or overwrites an existing one.
type Source string

const (
	SourceManual   Source = "manual"
	SourceDownload Source = "download"
)

// Star is one (user, asset) membership row.
type Star struct {
	UserID    uuid.UUID `db:"user_id" json:"user_id"`
	AssetID   string    `db:"asset_id" json:"asset_id"`
	Source    Source    `db:"source" json:"source"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
