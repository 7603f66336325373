package service

import "github.com/goldsnake/bank/internal/models"

// Bank is the operation surface the menu layer depends on.
type Bank interface {
	RegisterClient(input RegisterClientInput) (*models.Client, error)
	FindClient(cpf string) (*models.Client, error)
	OpenAccount(cpf string, kind models.AccountKind) (*models.Account, error)
	AccountsOf(cpf string) []*models.Account
	Deposit(number int, amount float64) error
	Withdraw(number int, amount float64) error
	GetStatement(number int) (*Statement, error)
	ResetDailyWithdrawals(number int) error
	Save() error
}

// Ensure the concrete type implements the interface
var _ Bank = (*BankService)(nil)
