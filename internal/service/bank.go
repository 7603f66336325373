// Package service implements the banking operations over the loaded state.
package service

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/goldsnake/bank/internal/config"
	"github.com/goldsnake/bank/internal/models"
	"github.com/goldsnake/bank/internal/repository"
)

// BankService orchestrates client registration, account opening, and the
// deposit/withdraw/statement operations. It owns no business rules about
// balances; those live on models.Account.
//
// mu serializes every operation against Save: the signal handler saves from
// its own goroutine while the menu may be mutating the state, and balance
// mutation plus log append must never interleave with a snapshot.
type BankService struct {
	state  *repository.State
	store  repository.Store
	cfg    *config.AccountConfig
	logger *slog.Logger
	mu     sync.Mutex
}

// NewBankService creates a BankService over a loaded state.
func NewBankService(
	state *repository.State,
	store repository.Store,
	cfg *config.AccountConfig,
	logger *slog.Logger,
) *BankService {
	return &BankService{
		state:  state,
		store:  store,
		cfg:    cfg,
		logger: logger,
	}
}

// Statement is the rendered view of one account: current balance plus the
// full transaction history.
type Statement struct {
	Entries []models.Transaction
	Balance float64
	Number  int
}

// RegisterClient validates the input and adds a new client. The cpf must be
// unique across all clients.
func (s *BankService) RegisterClient(input RegisterClientInput) (*models.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ValidateRegisterClient(input); err != nil {
		return nil, err
	}

	if s.state.ClientByID(input.CPF) != nil {
		return nil, &ServiceError{
			Code:    ErrCodeDuplicateIdentity,
			Message: fmt.Sprintf("a client with cpf %s already exists", input.CPF),
		}
	}

	client := models.NewClient(input.CPF, input.Name, input.BirthDate, input.Address)
	s.state.AddClient(client)

	s.logger.Info("client registered", "cpf", client.ID, "name", client.Name)
	return client, nil
}

// FindClient looks a client up by cpf.
func (s *BankService) FindClient(cpf string) (*models.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.findClient(cpf)
}

// OpenAccount opens an account of the given kind for the client with the
// given cpf. The number comes from the state's sequence; branch, overdraft
// limit, and withdrawal cap come from configuration.
func (s *BankService) OpenAccount(cpf string, kind models.AccountKind) (*models.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	client, err := s.findClient(cpf)
	if err != nil {
		return nil, err
	}

	number := s.state.Sequence.Next()

	var account *models.Account
	switch kind {
	case models.AccountKindChecking:
		account = models.NewCheckingAccount(number, s.cfg.Branch, client, s.cfg.OverdraftLimit, s.cfg.DailyWithdrawals)
	default:
		account = models.NewAccount(number, s.cfg.Branch, client)
	}

	client.AddAccount(account)
	s.state.AddAccount(account)

	s.logger.Info("account opened",
		"number", account.Number,
		"kind", account.Kind,
		"cpf", client.ID,
	)
	return account, nil
}

// AccountsOf returns the accounts owned by the client with the given cpf.
func (s *BankService) AccountsOf(cpf string) []*models.Account {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state.AccountsOf(cpf)
}

// Deposit adds amount to the account with the given number.
func (s *BankService) Deposit(number int, amount float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, err := s.findAccount(number)
	if err != nil {
		return err
	}
	if err := ValidateAmount(amount); err != nil {
		return err
	}

	if err := account.Apply(models.Operation{Direction: models.DirectionDeposit, Amount: amount}); err != nil {
		return wrapDomainError(err)
	}

	s.logger.Info("deposit", "number", number, "amount", amount, "balance", account.Balance)
	return nil
}

// Withdraw removes amount from the account with the given number.
func (s *BankService) Withdraw(number int, amount float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, err := s.findAccount(number)
	if err != nil {
		return err
	}
	if err := ValidateAmount(amount); err != nil {
		return err
	}

	if err := account.Apply(models.Operation{Direction: models.DirectionWithdrawal, Amount: amount}); err != nil {
		return wrapDomainError(err)
	}

	s.logger.Info("withdrawal", "number", number, "amount", amount, "balance", account.Balance)
	return nil
}

// GetStatement returns the balance and full history of an account.
func (s *BankService) GetStatement(number int) (*Statement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, err := s.findAccount(number)
	if err != nil {
		return nil, err
	}
	return &Statement{
		Number:  account.Number,
		Balance: account.Balance,
		Entries: account.Log.Entries(),
	}, nil
}

// ResetDailyWithdrawals restores the withdrawal counter of a checking
// account. There is no schedule; the caller decides when a new day starts.
func (s *BankService) ResetDailyWithdrawals(number int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, err := s.findAccount(number)
	if err != nil {
		return err
	}
	account.ResetDailyWithdrawals()
	s.logger.Info("daily withdrawals reset", "number", number)
	return nil
}

// Save persists the whole state to the data file.
func (s *BankService) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Save(s.state); err != nil {
		return &ServiceError{
			Code:    ErrCodeInternalError,
			Message: "failed to save data",
			Err:     err,
		}
	}
	s.logger.Info("state saved",
		"clients", len(s.state.Clients),
		"accounts", len(s.state.Accounts),
	)
	return nil
}

// findClient and findAccount expect the caller to hold mu.
func (s *BankService) findClient(cpf string) (*models.Client, error) {
	client := s.state.ClientByID(cpf)
	if client == nil {
		return nil, &ServiceError{
			Code:    ErrCodeClientNotFound,
			Message: fmt.Sprintf("no client with cpf %s", cpf),
		}
	}
	return client, nil
}

func (s *BankService) findAccount(number int) (*models.Account, error) {
	account := s.state.AccountByNumber(number)
	if account == nil {
		return nil, &ServiceError{
			Code:    ErrCodeAccountNotFound,
			Message: fmt.Sprintf("no account with number %d", number),
		}
	}
	return account, nil
}

// wrapDomainError maps sentinel domain errors to coded service errors.
func wrapDomainError(err error) error {
	switch {
	case errors.Is(err, models.ErrInvalidAmount):
		return &ServiceError{Code: ErrCodeInvalidAmount, Message: "amount must be greater than zero", Err: err}
	case errors.Is(err, models.ErrInsufficientFunds):
		return &ServiceError{Code: ErrCodeInsufficientFunds, Message: "insufficient funds", Err: err}
	case errors.Is(err, models.ErrWithdrawalLimitReached):
		return &ServiceError{Code: ErrCodeWithdrawalLimitReached, Message: "daily withdrawal limit reached", Err: err}
	default:
		return &ServiceError{Code: ErrCodeInternalError, Message: "operation failed", Err: err}
	}
}
