package install

import (
	"time"

	"github.com/google/uuid"
)

// Install tracks the last version of an asset a user pulled. The compound
// key keeps at most one row per (user, asset); re-installing the same
// version leaves the row untouched.
type Install struct {
	UserID      uuid.UUID `db:"user_id" json:"user_id"`
	AssetID     string    `db:"asset_id" json:"asset_id"`
	LastVersion string    `db:"last_version" json:"last_version"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

// Result is returned from a recorded install.
type Result struct {
	AssetID   string `json:"asset_id"`
	Version   string `json:"version"`
	Downloads int64  `json:"downloads"`
	// FirstForVersion is true when this user had not installed this
	// version before (first install or version change).
	FirstForVersion bool `json:"first_for_version"`
	// TollPaid is true when the installer's credit covered the toll.
	TollPaid bool `json:"toll_paid"`
}
