package service

import "fmt"

// ServiceError represents a business logic error with a code
type ServiceError struct {
	Err     error
	Message string
	Code    string
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// Common error codes
const (
	ErrCodeInvalidAmount          = "invalid_amount"
	ErrCodeInsufficientFunds      = "insufficient_funds"
	ErrCodeWithdrawalLimitReached = "withdrawal_limit_reached"
	ErrCodeDuplicateIdentity      = "duplicate_identity"
	ErrCodeInvalidClient          = "invalid_client"
	ErrCodeClientNotFound         = "client_not_found"
	ErrCodeAccountNotFound        = "account_not_found"
	ErrCodeOwnerNotFound          = "owner_not_found"
	ErrCodeMalformedStorage       = "malformed_storage"
	ErrCodeInternalError          = "internal_error"
)
