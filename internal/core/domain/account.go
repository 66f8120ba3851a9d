package domain

import "github.com/shopspring/decimal"

// Account represents a single named account. The ID is assigned by the
// caller at creation time and never changes. The balance is held as an
// arbitrary-precision decimal (never binary floating point) and is only
// mutated through the account store.
type Account struct {
	ID      string          `json:"accountId"`
	Balance decimal.Decimal `json:"balance"`
}
