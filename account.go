package tracker

import (
	"errors"
	"iter"
)

// ErrInsufficientFunds is reported by Withdraw when the requested amount
// exceeds the vault balance. The vault is left unchanged.
var ErrInsufficientFunds = errors.New("insufficient funds in savings vault")

// Account is the per-user state: identity, income, savings vault, and the
// append-only expense log.
//
// The vault balance never goes negative: withdrawals exceeding the balance
// are rejected, not clamped.
type Account struct {
	name     string
	username string // unique key in the registry, case-sensitive
	password string // stored in plain text, like the rest of the registry
	income   Money  // total weekly income
	target   Money  // weekly savings target, defaults to zero
	vault    Money  // savings vault balance
	expenses []Expense
}

// NewAccount creates an account with a zero savings target and an empty vault.
func NewAccount(name, username, password string, income Money) *Account {
	return &Account{
		name:     name,
		username: username,
		password: password,
		income:   income,
		target:   M(0),
		vault:    M(0),
		expenses: make([]Expense, 0),
	}
}

func (a *Account) Name() string               { return a.name }
func (a *Account) Username() string           { return a.username }
func (a *Account) Password() string           { return a.password }
func (a *Account) TotalWeeklyIncome() Money   { return a.income }
func (a *Account) WeeklySavingsTarget() Money { return a.target }
func (a *Account) SavingsVault() Money        { return a.vault }

// SetWeeklySavingsTarget sets the planned weekly deduction. The target is
// never auto-applied to the vault.
func (a *Account) SetWeeklySavingsTarget(target Money) { a.target = target }

// AddExpense appends an expense to the log. Insertion order is chronological
// order. Non-negativity of the amount is enforced at the input boundary;
// zero amounts are accepted.
func (a *Account) AddExpense(title string, category Category, amount Money, at Timestamp) {
	a.expenses = append(a.expenses, NewExpense(title, category, amount, at))
}

// Expenses returns an iterator that yields each expense in insertion order.
func (a *Account) Expenses() iter.Seq2[int, Expense] {
	return func(yield func(int, Expense) bool) {
		for i, e := range a.expenses {
			if !yield(i, e) {
				return
			}
		}
	}
}

// NumExpenses returns the number of recorded expenses.
func (a *Account) NumExpenses() int { return len(a.expenses) }

// TotalExpenses computes the sum of all expense amounts.
func (a *Account) TotalExpenses() Money {
	total := M(0)
	for _, e := range a.expenses {
		total = total.Add(e.amount)
	}
	return total
}

// TotalSavings is the "Total Savings" figure shown next to the vault balance.
//
// It is computed as the sum of expense amounts, not from a separate savings
// ledger. This mirrors the historical behavior of the tracker and is kept as
// a named derived quantity, distinct from SavingsVault. See the registry
// documentation topic.
func (a *Account) TotalSavings() Money { return a.TotalExpenses() }

// RemainingMoney computes income minus savings target minus total expenses.
// The result may be negative; it is not clamped.
func (a *Account) RemainingMoney() Money {
	return a.income.Sub(a.target).Sub(a.TotalExpenses())
}

// Deposit adds amount to the savings vault. Callers ensure the amount is
// positive; once reached the deposit always succeeds.
func (a *Account) Deposit(amount Money) {
	a.vault = a.vault.Add(amount)
}

// Withdraw removes amount from the savings vault. It fails with
// ErrInsufficientFunds, leaving the vault unchanged, unless
// 0 < amount <= balance.
func (a *Account) Withdraw(amount Money) error {
	if !amount.IsPositive() || amount.GreaterThan(a.vault) {
		return ErrInsufficientFunds
	}
	a.vault = a.vault.Sub(amount)
	return nil
}
