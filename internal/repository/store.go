// Package repository persists the bank state to a flat JSON document and
// rebuilds the client/account object graph on load.
package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/google/renameio"
	"github.com/google/uuid"

	"github.com/goldsnake/bank/internal/models"
)

// Store defines the persistence contract: one load at startup, one save at
// shutdown, nothing in between.
type Store interface {
	Load() (*State, error)
	Save(state *State) error
}

// jsonStore implements Store over a single JSON file
type jsonStore struct {
	path string

	// dailyWithdrawalCap is the configured withdrawal cap applied to
	// reloaded checking accounts; the cap itself is not part of the legacy
	// file, only the remaining count is.
	dailyWithdrawalCap int
}

// NewJSONStore creates a Store backed by the JSON document at path.
// dailyWithdrawalCap is the configured cap restored by a withdrawal reset.
func NewJSONStore(path string, dailyWithdrawalCap int) Store {
	if dailyWithdrawalCap < 1 {
		dailyWithdrawalCap = models.DefaultDailyWithdrawals
	}
	return &jsonStore{path: path, dailyWithdrawalCap: dailyWithdrawalCap}
}

// Load reads the data file and rebuilds the state. A missing file is not an
// error: it yields an empty state. A file that is not valid JSON yields
// ErrMalformedStorage so corruption surfaces instead of being silently
// replaced by an empty ledger on the next save. An account referencing an
// unknown cpf aborts the whole load with ErrOwnerNotFound; skipping the
// record would drop money from the ledger.
func (s *jsonStore) Load() (*State, error) {
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return NewState(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read data file %s: %w", s.path, err)
	}

	var doc document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformedStorage, s.path, err)
	}

	state := NewState()

	// Clients first; accounts resolve their owner against them.
	for _, rec := range doc.Usuarios {
		state.AddClient(models.NewClient(rec.CPF, rec.Nome, rec.DataNascimento, rec.Endereco))
	}

	highest := 0
	for _, rec := range doc.Contas {
		owner := state.ClientByID(rec.CPF)
		if owner == nil {
			return nil, fmt.Errorf("account %d references cpf %s: %w", rec.Numero, rec.CPF, ErrOwnerNotFound)
		}

		account := s.rebuildAccount(rec, owner)
		owner.AddAccount(account)
		state.AddAccount(account)

		if rec.Numero > highest {
			highest = rec.Numero
		}
	}

	// Resume numbering after the highest persisted number so reloads never
	// renumber existing accounts.
	state.Sequence = NewSequence(highest + 1)

	return state, nil
}

// Save serializes the whole state and atomically replaces the data file.
func (s *jsonStore) Save(state *State) error {
	doc := document{
		Usuarios: make([]clientRecord, 0, len(state.Clients)),
		Contas:   make([]accountRecord, 0, len(state.Accounts)),
	}

	for _, c := range state.Clients {
		doc.Usuarios = append(doc.Usuarios, clientRecord{
			CPF:            c.ID,
			Nome:           c.Name,
			DataNascimento: c.BirthDate,
			Endereco:       c.Address,
		})
	}

	for _, a := range state.Accounts {
		doc.Contas = append(doc.Contas, persistAccount(a))
	}

	data, err := json.MarshalIndent(doc, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to encode data file: %w", err)
	}

	if err := renameio.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write data file %s: %w", s.path, err)
	}

	return nil
}

// rebuildAccount turns a persisted record back into a live account. The
// presence of the limite fields marks the checking variant.
func (s *jsonStore) rebuildAccount(rec accountRecord, owner *models.Client) *models.Account {
	branch := rec.Agencia
	if branch == "" {
		branch = models.DefaultBranch
	}

	var account *models.Account
	if rec.Limite != nil || rec.LimiteSaques != nil {
		overdraft := models.DefaultOverdraftLimit
		if rec.Limite != nil {
			overdraft = *rec.Limite
		}
		remaining := models.DefaultDailyWithdrawals
		if rec.LimiteSaques != nil {
			remaining = *rec.LimiteSaques
		}
		withdrawalCap := s.dailyWithdrawalCap
		if remaining > withdrawalCap {
			withdrawalCap = remaining
		}
		account = models.NewCheckingAccount(rec.Numero, branch, owner, overdraft, withdrawalCap)
		account.RemainingDailyWithdrawals = remaining
	} else {
		account = models.NewAccount(rec.Numero, branch, owner)
	}

	account.Balance = rec.Saldo
	for _, tr := range rec.Historico.Transacoes {
		account.Log.Append(models.Transaction{
			ID:        uuid.New(),
			Amount:    tr.Valor,
			Timestamp: tr.Data.Time,
		})
	}

	return account
}

// persistAccount turns a live account into its persisted record.
func persistAccount(a *models.Account) accountRecord {
	rec := accountRecord{
		Numero:  a.Number,
		CPF:     a.Owner.ID,
		Saldo:   a.Balance,
		Agencia: a.Branch,
		Historico: historyRecord{
			Transacoes: make([]transactionRecord, 0, a.Log.Len()),
		},
	}

	if a.Kind == models.AccountKindChecking {
		limite := a.OverdraftLimit
		saques := a.RemainingDailyWithdrawals
		rec.Limite = &limite
		rec.LimiteSaques = &saques
	}

	for _, t := range a.Log.Entries() {
		rec.Historico.Transacoes = append(rec.Historico.Transacoes, transactionRecord{
			Valor: t.Amount,
			Data:  legacyTime{Time: t.Timestamp},
		})
	}

	return rec
}
