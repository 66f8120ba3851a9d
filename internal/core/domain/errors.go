package domain

import "errors"

// Domain errors returned by the account store and ledger service. The HTTP
// layer maps them to response codes; callers match them with errors.Is
// because the store wraps them with the account id involved.
var (
	// ErrDuplicateAccountID: creation with an id that already exists.
	ErrDuplicateAccountID = errors.New("account id already exists")

	// ErrAccountNotFound: lookup or transfer referencing an unknown id.
	ErrAccountNotFound = errors.New("account not found")

	// ErrSameAccountTransfer: transfer source equals destination.
	ErrSameAccountTransfer = errors.New("cannot transfer money to the same account")

	// ErrInvalidTransferAmount: transfer amount is zero or negative.
	ErrInvalidTransferAmount = errors.New("transfer amount must be greater than zero")

	// ErrInsufficientBalance: amount exceeds the source account's balance.
	ErrInsufficientBalance = errors.New("insufficient balance")
)
