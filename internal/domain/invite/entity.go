package invite

import "time"

// Type classifies an invite code. System codes are seeded with a large use
// budget; normal codes are the single-use ones minted on activation.
type Type string

const (
	TypeSystem Type = "system"
	TypeNormal Type = "normal"
	TypeSuper  Type = "super"
)

// SystemCreator marks codes not owned by any user. Activating one pays no
// inviter reward.
const SystemCreator = "system"

// Code is one invite code row. CreatedBy is either the SystemCreator
// sentinel or a user ID in text form.
type Code struct {
	Code      string     `db:"code" json:"code"`
	CreatedBy string     `db:"created_by" json:"created_by"`
	MaxUses   int        `db:"max_uses" json:"max_uses"`
	UseCount  int        `db:"use_count" json:"use_count"`
	Type      Type       `db:"type" json:"type"`
	ExpiresAt *time.Time `db:"expires_at" json:"expires_at,omitempty"`
	UsedAt    *time.Time `db:"used_at" json:"used_at,omitempty"`
	CreatedAt time.Time  `db:"created_at" json:"created_at"`
}

// Usable reports whether the code could still be activated right now.
func (c *Code) Usable(now time.Time) bool {
	if c.UseCount >= c.MaxUses {
		return false
	}
	if c.ExpiresAt != nil && now.After(*c.ExpiresAt) {
		return false
	}
	return true
}
