package domain

import "github.com/shopspring/decimal"

// Transfer describes a requested movement of money between two accounts.
type Transfer struct {
	FromAccountID string
	ToAccountID   string
	Amount        decimal.Decimal
}

// Validate runs the structural checks that need no account state.
func (t Transfer) Validate() error {
	if t.FromAccountID == t.ToAccountID {
		return ErrSameAccountTransfer
	}

	if t.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidTransferAmount
	}

	return nil
}
