package user

import (
	"time"

	"github.com/google/uuid"
)

// User is a marketplace account carrying the dual-currency balance pair.
// Reputation never goes below zero and no catalog entry decrements it;
// credit is spendable and floors at zero.
type User struct {
	ID    uuid.UUID `db:"id" json:"id"`
	Name  string    `db:"name" json:"name"`
	Email *string   `db:"email" json:"email,omitempty"`
	Bio   string    `db:"bio" json:"bio"`

	Reputation int64 `db:"reputation" json:"reputation"`
	Credit     int64 `db:"credit" json:"credit"`

	// InviteCode is the code this user activated, set at most once.
	InviteCode *string `db:"invite_code" json:"invite_code,omitempty"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// HasActivatedInvite reports whether the one-time activation already happened.
func (u *User) HasActivatedInvite() bool {
	return u.InviteCode != nil && *u.InviteCode != ""
}
