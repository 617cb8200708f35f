package domain

import "github.com/shopspring/decimal"

// Party identifies one of the two profit-sharing roles.
type Party string

const (
	Party1 Party = "party1"
	Party2 Party = "party2"
)

// IsValid reports whether p is party1 or party2.
func (p Party) IsValid() bool {
	return p == Party1 || p == Party2
}

// Withdrawal is money taken out by one party. Withdrawals are never updated.
type Withdrawal struct {
	ID          string          `json:"id"`
	Amount      decimal.Decimal `json:"amount"`
	Party       Party           `json:"party"`
	Description string          `json:"description"`
	Ownership
}

// PartyTotals holds all-time withdrawal sums per party.
type PartyTotals struct {
	Party1 decimal.Decimal `json:"party1"`
	Party2 decimal.Decimal `json:"party2"`
}

// Add accumulates amount into the bucket for p. Unknown parties are ignored.
func (t *PartyTotals) Add(p Party, amount decimal.Decimal) {
	switch p {
	case Party1:
		t.Party1 = t.Party1.Add(amount)
	case Party2:
		t.Party2 = t.Party2.Add(amount)
	}
}
