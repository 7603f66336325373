// Package cli implements the interactive terminal menu over the bank service.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/fatih/color"

	"github.com/goldsnake/bank/internal/models"
	"github.com/goldsnake/bank/internal/service"
)

// Menu drives the interactive session. Reader and writer are injected so
// sessions can be scripted in tests.
type Menu struct {
	bank   service.Bank
	in     *bufio.Scanner
	out    io.Writer
	logger *slog.Logger

	// active is the client selected via option 3; when set, account
	// selection skips the cpf prompt.
	active *models.Client

	success *color.Color
	failure *color.Color
	heading *color.Color
}

// NewMenu creates a menu reading from in and writing to out.
func NewMenu(bank service.Bank, in io.Reader, out io.Writer, logger *slog.Logger) *Menu {
	return &Menu{
		bank:    bank,
		in:      bufio.NewScanner(in),
		out:     out,
		logger:  logger,
		success: color.New(color.FgGreen),
		failure: color.New(color.FgRed),
		heading: color.New(color.FgYellow),
	}
}

// Run loops over the main menu until the user exits or input ends.
// The state is saved on exit.
func (m *Menu) Run() error {
	for {
		m.printMainMenu()

		choice, ok := m.readInt("Choose an option: ")
		if !ok {
			// Input ended (EOF); save and leave like a normal exit.
			return m.exit()
		}

		switch choice {
		case 1:
			m.registerClient()
		case 2:
			m.openAccount()
		case 3:
			m.selectClient()
		case 4:
			m.listAccounts()
		case 5:
			m.deposit()
		case 6:
			m.withdraw()
		case 7:
			m.statement()
		case 8:
			m.resetDailyWithdrawals()
		case 9:
			return m.exit()
		default:
			m.failure.Fprintln(m.out, "Invalid option.")
		}
	}
}

func (m *Menu) printMainMenu() {
	m.heading.Fprintln(m.out, "+--------------------------------------+")
	m.heading.Fprintln(m.out, "|      Welcome to GoldSnake Bank       |")
	m.heading.Fprintln(m.out, "+--------------------------------------+")
	m.heading.Fprintln(m.out, "|  1 - Register client                 |")
	m.heading.Fprintln(m.out, "|  2 - Open account                    |")
	m.heading.Fprintln(m.out, "|  3 - Select client                   |")
	m.heading.Fprintln(m.out, "|  4 - List accounts                   |")
	m.heading.Fprintln(m.out, "|  5 - Deposit                         |")
	m.heading.Fprintln(m.out, "|  6 - Withdraw                        |")
	m.heading.Fprintln(m.out, "|  7 - Statement                       |")
	m.heading.Fprintln(m.out, "|  8 - Reset daily withdrawals         |")
	m.heading.Fprintln(m.out, "|  9 - Exit and save                   |")
	m.heading.Fprintln(m.out, "+--------------------------------------+")
}

func (m *Menu) registerClient() {
	m.heading.Fprintln(m.out, "=== Register client ===")

	input := service.RegisterClientInput{}
	input.Name, _ = m.readLine("Name: ")
	input.BirthDate, _ = m.readLine("Birth date (DD/MM/AAAA): ")
	input.CPF, _ = m.readLine("CPF (11 digits): ")
	input.Address, _ = m.readLine("Address: ")

	client, err := m.bank.RegisterClient(input)
	if err != nil {
		m.reportError(err)
		return
	}
	m.success.Fprintf(m.out, "Client %s registered.\n", client.Name)
}

func (m *Menu) openAccount() {
	m.heading.Fprintln(m.out, "=== Open account ===")

	cpf, ok := m.readLine("CPF of the account owner: ")
	if !ok {
		return
	}

	kind := models.AccountKindChecking
	answer, _ := m.readLine("Account type (1 - checking, 2 - base) [1]: ")
	if answer == "2" {
		kind = models.AccountKindBase
	}

	account, err := m.bank.OpenAccount(cpf, kind)
	if err != nil {
		m.reportError(err)
		return
	}
	m.success.Fprintf(m.out, "Account %d opened for %s.\n", account.Number, account.Owner.Name)
}

func (m *Menu) selectClient() {
	m.heading.Fprintln(m.out, "=== Select client ===")

	cpf, ok := m.readLine("CPF: ")
	if !ok {
		return
	}

	client, err := m.bank.FindClient(cpf)
	if err != nil {
		m.reportError(err)
		return
	}
	m.active = client
	m.success.Fprintf(m.out, "Client %s selected.\n", client.Name)
}

func (m *Menu) listAccounts() {
	cpf, ok := m.clientCPF()
	if !ok {
		return
	}

	accounts := m.bank.AccountsOf(cpf)
	if len(accounts) == 0 {
		m.failure.Fprintf(m.out, "No accounts found for CPF %s.\n", cpf)
		return
	}

	m.heading.Fprintln(m.out, "Accounts:")
	for _, a := range accounts {
		fmt.Fprintf(m.out, "Account %d | Branch %s | Balance: R$ %.2f\n", a.Number, a.Branch, a.Balance)
	}
}

func (m *Menu) deposit() {
	account, ok := m.selectAccount()
	if !ok {
		return
	}

	amount, ok := m.readFloat("Deposit amount: R$ ")
	if !ok {
		return
	}

	if err := m.bank.Deposit(account.Number, amount); err != nil {
		m.reportError(err)
		return
	}
	m.success.Fprintln(m.out, "Deposit completed.")
}

func (m *Menu) withdraw() {
	account, ok := m.selectAccount()
	if !ok {
		return
	}

	amount, ok := m.readFloat("Withdrawal amount: R$ ")
	if !ok {
		return
	}

	if err := m.bank.Withdraw(account.Number, amount); err != nil {
		m.reportError(err)
		return
	}
	m.success.Fprintln(m.out, "Withdrawal completed.")
}

func (m *Menu) statement() {
	account, ok := m.selectAccount()
	if !ok {
		return
	}

	statement, err := m.bank.GetStatement(account.Number)
	if err != nil {
		m.reportError(err)
		return
	}

	m.heading.Fprintf(m.out, "Statement for account %d:\n", statement.Number)
	fmt.Fprintf(m.out, "Current balance: R$ %.2f\n", statement.Balance)
	if len(statement.Entries) == 0 {
		m.heading.Fprintln(m.out, "No transactions yet.")
		return
	}
	for _, entry := range statement.Entries {
		label := "Deposit"
		if entry.Direction() == models.DirectionWithdrawal {
			label = "Withdrawal"
		}
		fmt.Fprintf(m.out, "%s: R$ %.2f (%s)\n", label, entry.Amount, entry.Timestamp.Format("2006-01-02 15:04:05"))
	}
}

func (m *Menu) resetDailyWithdrawals() {
	account, ok := m.selectAccount()
	if !ok {
		return
	}

	if err := m.bank.ResetDailyWithdrawals(account.Number); err != nil {
		m.reportError(err)
		return
	}
	m.success.Fprintf(m.out, "Daily withdrawals reset for account %d.\n", account.Number)
}

func (m *Menu) exit() error {
	if err := m.bank.Save(); err != nil {
		m.reportError(err)
		return err
	}
	m.heading.Fprintln(m.out, "Thanks for using GoldSnake Bank. Goodbye!")
	return nil
}

// clientCPF returns the active client's cpf or prompts for one.
func (m *Menu) clientCPF() (string, bool) {
	if m.active != nil {
		return m.active.ID, true
	}
	return m.readLine("CPF: ")
}

// selectAccount lists the client's accounts and asks which one to use.
// A single account is picked without prompting.
func (m *Menu) selectAccount() (*models.Account, bool) {
	cpf, ok := m.clientCPF()
	if !ok {
		return nil, false
	}

	accounts := m.bank.AccountsOf(cpf)
	if len(accounts) == 0 {
		m.failure.Fprintf(m.out, "No accounts found for CPF %s.\n", cpf)
		return nil, false
	}
	if len(accounts) == 1 {
		return accounts[0], true
	}

	m.heading.Fprintln(m.out, "Select an account:")
	for i, a := range accounts {
		fmt.Fprintf(m.out, "%d - Account %d | Balance: R$ %.2f\n", i+1, a.Number, a.Balance)
	}

	choice, ok := m.readInt("Option: ")
	if !ok || choice < 1 || choice > len(accounts) {
		m.failure.Fprintln(m.out, "Invalid option.")
		return nil, false
	}
	return accounts[choice-1], true
}

// reportError prints a friendly message for coded service errors and logs
// the full error.
func (m *Menu) reportError(err error) {
	m.logger.Warn("operation failed", "error", err)

	var svcErr *service.ServiceError
	if errors.As(err, &svcErr) {
		m.failure.Fprintln(m.out, messageFor(svcErr))
		return
	}
	m.failure.Fprintf(m.out, "Something went wrong: %v\n", err)
}

func messageFor(err *service.ServiceError) string {
	switch err.Code {
	case service.ErrCodeInvalidAmount:
		return "Invalid amount. It must be greater than zero."
	case service.ErrCodeInsufficientFunds:
		return "Invalid amount or insufficient funds."
	case service.ErrCodeWithdrawalLimitReached:
		return "Daily withdrawal limit reached."
	case service.ErrCodeDuplicateIdentity:
		return "A client with this CPF already exists."
	case service.ErrCodeInvalidClient:
		return "Invalid client data. The CPF must have 11 numeric digits."
	case service.ErrCodeClientNotFound:
		return "Client not found."
	case service.ErrCodeAccountNotFound:
		return "Account not found."
	default:
		return err.Message
	}
}
