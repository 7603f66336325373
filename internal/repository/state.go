package repository

import "github.com/goldsnake/bank/internal/models"

// State is the in-memory working set: every client and account for the
// session, plus the account-number sequence. It is loaded once at startup
// and saved wholesale at shutdown.
type State struct {
	Sequence *Sequence
	Clients  []*models.Client
	Accounts []*models.Account
}

// NewState creates an empty state numbering accounts from 1.
func NewState() *State {
	return &State{Sequence: NewSequence(1)}
}

// AddClient registers a client in the state.
func (s *State) AddClient(c *models.Client) {
	s.Clients = append(s.Clients, c)
}

// AddAccount registers an account in the state.
func (s *State) AddAccount(a *models.Account) {
	s.Accounts = append(s.Accounts, a)
}

// ClientByID finds a client by its national id, or nil.
func (s *State) ClientByID(id string) *models.Client {
	for _, c := range s.Clients {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// AccountByNumber finds an account by its number, or nil.
func (s *State) AccountByNumber(number int) *models.Account {
	for _, a := range s.Accounts {
		if a.Number == number {
			return a
		}
	}
	return nil
}

// AccountsOf returns the accounts owned by the client with the given id.
func (s *State) AccountsOf(id string) []*models.Account {
	var out []*models.Account
	for _, a := range s.Accounts {
		if a.Owner != nil && a.Owner.ID == id {
			out = append(out, a)
		}
	}
	return out
}
