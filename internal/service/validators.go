package service

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// RegisterClientInput carries the fields needed to register a client.
// The birth date is a free-text string on purpose: the legacy data holds
// unvalidated DD/MM/AAAA strings and must keep loading.
type RegisterClientInput struct {
	CPF       string `validate:"required,len=11,numeric"`
	Name      string `validate:"required"`
	BirthDate string
	Address   string `validate:"required"`
}

// ValidateRegisterClient checks the registration input shape.
func ValidateRegisterClient(input RegisterClientInput) error {
	if err := validate.Struct(input); err != nil {
		return &ServiceError{
			Code:    ErrCodeInvalidClient,
			Message: "invalid client data",
			Err:     err,
		}
	}
	return nil
}

// ValidateCPF checks that id is an 11-digit numeric string.
func ValidateCPF(id string) error {
	if err := validate.Var(id, "required,len=11,numeric"); err != nil {
		return &ServiceError{
			Code:    ErrCodeInvalidClient,
			Message: "cpf must be an 11-digit numeric string",
			Err:     err,
		}
	}
	return nil
}

// ValidateAmount checks that a monetary amount is strictly positive.
// Zero is rejected so a transaction's sign always encodes its direction.
func ValidateAmount(amount float64) error {
	if amount <= 0 {
		return &ServiceError{
			Code:    ErrCodeInvalidAmount,
			Message: "amount must be greater than zero",
		}
	}
	return nil
}
