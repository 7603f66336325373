package models

import (
	"time"

	"github.com/google/uuid"
)

// Direction represents the direction of a balance movement
type Direction string

const (
	DirectionDeposit    Direction = "DEPOSIT"
	DirectionWithdrawal Direction = "WITHDRAWAL"
)

// Operation is a request to move money on an account. It replaces the
// transaction-decides-how-to-apply indirection with a plain discriminated
// value handled by Account.Apply.
type Operation struct {
	Direction Direction
	Amount    float64
}

// Transaction is an immutable record of a settled balance movement.
// The sign of Amount encodes the direction: positive for deposits,
// negative for withdrawals. Amount is never zero.
type Transaction struct {
	Timestamp time.Time
	Amount    float64
	ID        uuid.UUID
}

// NewTransaction creates a transaction stamped with the current time.
func NewTransaction(amount float64) Transaction {
	return Transaction{
		ID:        uuid.New(),
		Amount:    amount,
		Timestamp: time.Now(),
	}
}

// Direction reports the direction encoded in the amount's sign.
func (t Transaction) Direction() Direction {
	if t.Amount > 0 {
		return DirectionDeposit
	}
	return DirectionWithdrawal
}

// TransactionLog is the append-only chronological ledger of one account.
// Insertion order is chronological order; entries are never removed or
// reordered.
type TransactionLog struct {
	entries []Transaction
}

// NewTransactionLog creates an empty log.
func NewTransactionLog() *TransactionLog {
	return &TransactionLog{}
}

// Append adds a settled transaction to the end of the log.
// Validation happens upstream in Account; the log accepts what it is given.
func (l *TransactionLog) Append(t Transaction) {
	l.entries = append(l.entries, t)
}

// Entries returns a copy of the log so callers cannot mutate history.
func (l *TransactionLog) Entries() []Transaction {
	out := make([]Transaction, len(l.entries))
	copy(out, l.entries)
	return out
}

// Len returns the number of recorded transactions.
func (l *TransactionLog) Len() int {
	return len(l.entries)
}
