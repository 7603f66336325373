// Package models defines the domain types and balance rules for the bank.
package models

// Client is a natural person identified by an 11-digit national id (CPF).
// Identity is always the ID string, never object identity.
type Client struct {
	ID        string
	Name      string
	BirthDate string
	Address   string
	Accounts  []*Account
}

// NewClient creates a client with no accounts.
func NewClient(id, name, birthDate, address string) *Client {
	return &Client{
		ID:        id,
		Name:      name,
		BirthDate: birthDate,
		Address:   address,
	}
}

// AddAccount appends an owned account reference. Callers must not add the
// same account twice.
func (c *Client) AddAccount(a *Account) {
	c.Accounts = append(c.Accounts, a)
}

// Execute applies an operation to one of the client's accounts.
// Validation lives in Account; this is a pass-through.
func (c *Client) Execute(a *Account, op Operation) error {
	return a.Apply(op)
}
