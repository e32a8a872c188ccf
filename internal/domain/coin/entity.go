package coin

import (
	"time"

	"github.com/google/uuid"
)

// Currency identifies one of the two user balances.
type Currency string

const (
	// CurrencyReputation is the non-spendable contribution score.
	CurrencyReputation Currency = "reputation"
	// CurrencyCredit is the spendable balance.
	CurrencyCredit Currency = "credit"
)

// Valid reports whether c is a known currency.
func (c Currency) Valid() bool {
	return c == CurrencyReputation || c == CurrencyCredit
}

// Event is one append-only ledger row. For a fixed (user, currency) the
// events ordered by ID replay to the stored balance under the zero floor.
type Event struct {
	ID           int64     `db:"id" json:"id"`
	UserID       uuid.UUID `db:"user_id" json:"user_id"`
	Currency     Currency  `db:"currency" json:"currency"`
	Amount       int64     `db:"amount" json:"amount"`
	Event        string    `db:"event" json:"event"`
	RefID        *string   `db:"ref_id" json:"ref_id,omitempty"`
	BalanceAfter int64     `db:"balance_after" json:"balance_after"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// Balances is the per-user balance pair.
type Balances struct {
	Reputation int64 `db:"reputation" json:"reputation"`
	Credit     int64 `db:"credit" json:"credit"`
}
