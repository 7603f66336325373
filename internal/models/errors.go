package models

import "errors"

// Domain errors returned by account operations
var (
	// ErrInvalidAmount indicates a non-positive amount on deposit or withdraw
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrInsufficientFunds indicates a withdrawal exceeding the available
	// balance (plus overdraft for checking accounts)
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrWithdrawalLimitReached indicates the daily withdrawal count is
	// exhausted on a checking account
	ErrWithdrawalLimitReached = errors.New("daily withdrawal limit reached")

	// ErrUnsupportedOperation indicates an operation with an unknown
	// direction; callers constructing Operations by hand have a bug
	ErrUnsupportedOperation = errors.New("unsupported operation")
)
