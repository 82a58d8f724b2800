package bank

import (
	"errors"
	"sort"
)

// ErrAccountExists is returned by Store.Add when the identifier is taken.
var ErrAccountExists = errors.New("account already exists")

// Store is the in-memory account table, keyed by account identifier.
// It owns every Account record exclusively; callers mutate accounts only
// through references obtained from Get. The store does no locking: callers
// with concurrent access must serialize externally.
type Store struct {
	accounts map[string]*Account
}

// NewStore returns an empty account store.
func NewStore() *Store {
	return &Store{accounts: make(map[string]*Account)}
}

// Add inserts the account. When an account with the same identifier already
// exists, the new account is not stored and ErrAccountExists is returned;
// there is no identifier regeneration or retry.
func (s *Store) Add(a *Account) error {
	if _, ok := s.accounts[a.ID]; ok {
		return ErrAccountExists
	}
	s.accounts[a.ID] = a
	return nil
}

// Get looks up an account by exact identifier.
func (s *Store) Get(id string) (*Account, bool) {
	a, ok := s.accounts[id]
	return a, ok
}

// Len returns the number of stored accounts.
func (s *Store) Len() int {
	return len(s.accounts)
}

// All returns the accounts sorted by identifier.
func (s *Store) All() []*Account {
	all := make([]*Account, 0, len(s.accounts))
	for _, a := range s.accounts {
		all = append(all, a)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return all
}
