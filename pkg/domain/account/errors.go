package account

import "errors"

var (
	// ErrInvalidAmount is returned when an operation amount is not positive.
	ErrInvalidAmount = errors.New("amount must be positive")

	// ErrInsufficientFunds is returned when a withdrawal or transfer would
	// drive the balance below zero.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrInsufficientOpeningBalance is returned when an investment account
	// is opened below the minimum opening balance.
	ErrInsufficientOpeningBalance = errors.New("investment account requires minimum opening balance of 500.00")

	// ErrEmploymentRequired is returned when a cheque account is opened for
	// an unemployed individual.
	ErrEmploymentRequired = errors.New("individual customers must be employed to open a cheque account")

	// ErrSameAccount is returned when a transfer targets its own source.
	ErrSameAccount = errors.New("cannot transfer to same account")

	// ErrAccountNotFound is returned when an account cannot be resolved.
	ErrAccountNotFound = errors.New("account not found")

	// ErrNilOwner is returned when an account is constructed without an owner.
	ErrNilOwner = errors.New("account requires an owner")
)
