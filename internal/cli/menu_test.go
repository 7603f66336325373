package cli

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goldsnake/bank/internal/config"
	"github.com/goldsnake/bank/internal/repository"
	"github.com/goldsnake/bank/internal/service"
)

func runSession(t *testing.T, script string) (string, string) {
	t.Helper()

	dataFile := filepath.Join(t.TempDir(), "banco_data.json")
	store := repository.NewJSONStore(dataFile, 3)
	state, err := store.Load()
	require.NoError(t, err)

	cfg := &config.AccountConfig{Branch: "0001", OverdraftLimit: 500, DailyWithdrawals: 3}
	bank := service.NewBankService(state, store, cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))

	var out bytes.Buffer
	menu := NewMenu(bank, strings.NewReader(script), &out, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, menu.Run())

	return out.String(), dataFile
}

func TestMenu_FullSession(t *testing.T) {
	script := strings.Join([]string{
		"1",           // register client
		"Ana Souza",   // name
		"01/02/1990",  // birth date
		"12345678901", // cpf
		"Rua A, 1",    // address
		"2",           // open account
		"12345678901", // cpf
		"1",           // checking
		"5",           // deposit
		"12345678901", // cpf
		"100",         // amount
		"6",           // withdraw
		"12345678901",
		"30",
		"7", // statement
		"12345678901",
		"9", // exit and save
	}, "\n") + "\n"

	out, dataFile := runSession(t, script)

	assert.Contains(t, out, "Client Ana Souza registered.")
	assert.Contains(t, out, "Account 1 opened for Ana Souza.")
	assert.Contains(t, out, "Deposit completed.")
	assert.Contains(t, out, "Withdrawal completed.")
	assert.Contains(t, out, "Current balance: R$ 70.00")
	assert.Contains(t, out, "Deposit: R$ 100.00")
	assert.Contains(t, out, "Withdrawal: R$ -30.00")
	assert.Contains(t, out, "Goodbye!")

	// Exit persisted the session.
	raw, err := os.ReadFile(dataFile)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "\"cpf\": \"12345678901\"")
	assert.Contains(t, string(raw), "\"saldo\": 70")
}

func TestMenu_ActiveClientSkipsCPFPrompt(t *testing.T) {
	script := strings.Join([]string{
		"1", "Ana Souza", "01/02/1990", "12345678901", "Rua A, 1",
		"2", "12345678901", "1",
		"3", "12345678901", // select client
		"5", "200", // deposit without cpf prompt
		"4", // list accounts without cpf prompt
		"9",
	}, "\n") + "\n"

	out, _ := runSession(t, script)

	assert.Contains(t, out, "Client Ana Souza selected.")
	assert.Contains(t, out, "Deposit completed.")
	assert.Contains(t, out, "Balance: R$ 200.00")
}

func TestMenu_ErrorMessages(t *testing.T) {
	t.Run("duplicate client", func(t *testing.T) {
		script := strings.Join([]string{
			"1", "Ana Souza", "01/02/1990", "12345678901", "Rua A, 1",
			"1", "Ana Clone", "01/02/1990", "12345678901", "Rua B, 2",
			"9",
		}, "\n") + "\n"

		out, _ := runSession(t, script)
		assert.Contains(t, out, "A client with this CPF already exists.")
	})

	t.Run("invalid cpf", func(t *testing.T) {
		script := strings.Join([]string{
			"1", "Ana Souza", "01/02/1990", "123", "Rua A, 1",
			"9",
		}, "\n") + "\n"

		out, _ := runSession(t, script)
		assert.Contains(t, out, "The CPF must have 11 numeric digits.")
	})

	t.Run("withdrawal past overdraft", func(t *testing.T) {
		script := strings.Join([]string{
			"1", "Ana Souza", "01/02/1990", "12345678901", "Rua A, 1",
			"2", "12345678901", "1",
			"6", "12345678901", "501",
			"9",
		}, "\n") + "\n"

		out, _ := runSession(t, script)
		assert.Contains(t, out, "Invalid amount or insufficient funds.")
	})

	t.Run("unknown menu option", func(t *testing.T) {
		out, _ := runSession(t, "42\n9\n")
		assert.Contains(t, out, "Invalid option.")
	})

	t.Run("no accounts for cpf", func(t *testing.T) {
		out, _ := runSession(t, "5\n99999999999\n9\n")
		assert.Contains(t, out, "No accounts found for CPF 99999999999.")
	})
}

func TestMenu_EOFSavesAndExits(t *testing.T) {
	// Script ends without choosing exit; EOF must still save.
	script := strings.Join([]string{
		"1", "Ana Souza", "01/02/1990", "12345678901", "Rua A, 1",
	}, "\n") + "\n"

	_, dataFile := runSession(t, script)

	raw, err := os.ReadFile(dataFile)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "Ana Souza")
}
