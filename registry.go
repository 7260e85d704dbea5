package tracker

import (
	"errors"
	"fmt"
	"iter"
)

// ErrDuplicateUsername is reported by Register when the username is already
// taken. The registry is left unchanged.
var ErrDuplicateUsername = errors.New("username already exists")

// ErrInvalidCredentials is reported by Authenticate when no account matches
// the given username and password exactly.
var ErrInvalidCredentials = errors.New("invalid username or password")

// Registry holds all registered accounts.
//
// The registry owns the full collection of accounts; at most one account is
// active (logged in) per process run. Usernames are unique, case-sensitive
// keys.
type Registry struct {
	accounts []*Account
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{accounts: make([]*Account, 0)}
}

// Len returns the number of registered accounts.
func (r *Registry) Len() int { return len(r.accounts) }

// Accounts returns an iterator that yields each account in registration order.
func (r *Registry) Accounts() iter.Seq2[int, *Account] {
	return func(yield func(int, *Account) bool) {
		for i, a := range r.accounts {
			if !yield(i, a) {
				return
			}
		}
	}
}

// Find returns the account registered under username, or nil if unknown.
// It is a linear scan returning the first exact match.
func (r *Registry) Find(username string) *Account {
	for _, a := range r.accounts {
		if a.username == username {
			return a
		}
	}
	return nil
}

// Register creates a new account and appends it to the registry. The initial
// savings amount goes through the same Deposit path as later deposits.
// It fails with ErrDuplicateUsername, leaving the registry unchanged, if the
// username is already taken. The caller is expected to persist the registry
// immediately after a successful registration.
func (r *Registry) Register(name, username, password string, income, initialSavings Money) (*Account, error) {
	if r.Find(username) != nil {
		return nil, fmt.Errorf("cannot register %q: %w", username, ErrDuplicateUsername)
	}
	a := NewAccount(name, username, password, income)
	a.Deposit(initialSavings)
	r.accounts = append(r.accounts, a)
	return a, nil
}

// Authenticate returns the account matching both username and password, or
// ErrInvalidCredentials if no exact match exists.
func (r *Registry) Authenticate(username, password string) (*Account, error) {
	for _, a := range r.accounts {
		if a.username == username && a.password == password {
			return a, nil
		}
	}
	return nil, ErrInvalidCredentials
}
