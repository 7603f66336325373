package tests

import (
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/goldsnake/bank/internal/config"
	"github.com/goldsnake/bank/internal/repository"
	"github.com/goldsnake/bank/internal/service"
)

// TestSession wraps a bank service over a temp data file so tests can
// simulate full program runs, including restarts against the same file.
type TestSession struct {
	Bank     *service.BankService
	Store    repository.Store
	DataFile string
	t        *testing.T
}

// SetupTest creates a session over a fresh temp data file.
func SetupTest(t *testing.T) *TestSession {
	t.Helper()
	return resume(t, filepath.Join(t.TempDir(), "banco_data.json"))
}

// Restart reloads the data file into a new session, as a new program run
// would.
func (s *TestSession) Restart() *TestSession {
	s.t.Helper()
	return resume(s.t, s.DataFile)
}

func resume(t *testing.T, dataFile string) *TestSession {
	t.Helper()

	cfg := &config.AccountConfig{
		Branch:           "0001",
		OverdraftLimit:   500.0,
		DailyWithdrawals: 3,
	}

	store := repository.NewJSONStore(dataFile, cfg.DailyWithdrawals)
	state, err := store.Load()
	require.NoError(t, err, "failed to load data file")
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return &TestSession{
		Bank:     service.NewBankService(state, store, cfg, logger),
		Store:    store,
		DataFile: dataFile,
		t:        t,
	}
}

// RegisterClient registers a client and fails the test on error.
func (s *TestSession) RegisterClient(cpf, name string) {
	s.t.Helper()
	_, err := s.Bank.RegisterClient(service.RegisterClientInput{
		CPF:       cpf,
		Name:      name,
		BirthDate: "01/01/1990",
		Address:   "Rua das Flores, 10",
	})
	require.NoError(s.t, err, "failed to register client")
}
