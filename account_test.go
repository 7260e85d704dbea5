package tracker

import (
	"errors"
	"testing"
	"time"
)

// newTestAccount creates a standard account for testing.
func newTestAccount(t *testing.T) *Account {
	t.Helper()
	return NewAccount("Alice", "alice", "pw1", M(500))
}

func testTimestamp(h, m, s int) Timestamp {
	return NewTimestamp(2025, time.August, 1, h, m, s)
}

func TestAccount_TotalExpenses(t *testing.T) {
	a := newTestAccount(t)

	a.AddExpense("Coffee", Personal, M(4.5), testTimestamp(9, 0, 0))
	a.AddExpense("Rent", Bills, M(300), testTimestamp(10, 0, 0))
	a.AddExpense("Gift", Other, M(0), testTimestamp(11, 0, 0))

	if got, want := a.TotalExpenses(), M(304.5); !got.Equal(want) {
		t.Errorf("TotalExpenses() = %s, want %s", got, want)
	}
	if got, want := a.NumExpenses(), 3; got != want {
		t.Errorf("NumExpenses() = %d, want %d", got, want)
	}
}

func TestAccount_RemainingMoney_CanBeNegative(t *testing.T) {
	a := NewAccount("Bob", "bob", "pw", M(100))
	a.SetWeeklySavingsTarget(M(20))
	a.AddExpense("Groceries", Personal, M(90), testTimestamp(12, 0, 0))

	// 100 - 20 - 90 = -10, not clamped.
	if got, want := a.RemainingMoney(), M(-10); !got.Equal(want) {
		t.Errorf("RemainingMoney() = %s, want %s", got, want)
	}
}

func TestAccount_TotalSavings_IsSumOfExpenses(t *testing.T) {
	a := newTestAccount(t)
	a.Deposit(M(1000))
	a.AddExpense("Coffee", Personal, M(4.5), testTimestamp(9, 0, 0))
	a.AddExpense("Rent", Bills, M(300), testTimestamp(10, 0, 0))

	// TotalSavings is a derived quantity over the expense log, distinct from
	// the vault balance.
	if got, want := a.TotalSavings(), M(304.5); !got.Equal(want) {
		t.Errorf("TotalSavings() = %s, want %s", got, want)
	}
	if got, want := a.SavingsVault(), M(1000); !got.Equal(want) {
		t.Errorf("SavingsVault() = %s, want %s", got, want)
	}
}

func TestAccount_VaultAlgebra(t *testing.T) {
	a := newTestAccount(t)

	deposits := []Money{M(50), M(10), M(0.5)}
	for _, d := range deposits {
		a.Deposit(d)
	}
	if got, want := a.SavingsVault(), M(60.5); !got.Equal(want) {
		t.Fatalf("vault after deposits = %s, want %s", got, want)
	}

	if err := a.Withdraw(M(60)); err != nil {
		t.Fatalf("Withdraw(60) returned unexpected error: %v", err)
	}
	if got, want := a.SavingsVault(), M(0.5); !got.Equal(want) {
		t.Errorf("vault after withdrawal = %s, want %s", got, want)
	}
}

func TestAccount_Withdraw_InsufficientFunds(t *testing.T) {
	a := newTestAccount(t)
	a.Deposit(M(50))

	err := a.Withdraw(M(60))
	if !errors.Is(err, ErrInsufficientFunds) {
		t.Fatalf("Withdraw(60) error = %v, want ErrInsufficientFunds", err)
	}
	// The rejected withdrawal must leave the balance unchanged.
	if got, want := a.SavingsVault(), M(50); !got.Equal(want) {
		t.Errorf("vault after rejected withdrawal = %s, want %s", got, want)
	}
}

func TestAccount_Withdraw_NonPositive(t *testing.T) {
	a := newTestAccount(t)
	a.Deposit(M(50))

	for _, amount := range []Money{M(0), M(-5)} {
		if err := a.Withdraw(amount); !errors.Is(err, ErrInsufficientFunds) {
			t.Errorf("Withdraw(%s) error = %v, want ErrInsufficientFunds", amount, err)
		}
	}
	if got, want := a.SavingsVault(), M(50); !got.Equal(want) {
		t.Errorf("vault = %s, want %s", got, want)
	}
}

// TestAccount_EndToEnd replays a full user scenario: registration with
// initial savings, expenses, a rejected withdrawal, and a vault drain.
func TestAccount_EndToEnd(t *testing.T) {
	registry := NewRegistry()
	a, err := registry.Register("Alice", "alice", "pw1", M(500), M(50))
	if err != nil {
		t.Fatalf("Register() returned unexpected error: %v", err)
	}
	if got, want := a.SavingsVault(), M(50); !got.Equal(want) {
		t.Fatalf("vault after registration = %s, want %s", got, want)
	}

	a.AddExpense("Coffee", Personal, M(4.5), testTimestamp(9, 0, 0))
	a.AddExpense("Rent", Bills, M(300), testTimestamp(10, 0, 0))

	if got, want := a.TotalExpenses(), M(304.5); !got.Equal(want) {
		t.Errorf("TotalExpenses() = %s, want %s", got, want)
	}
	if got, want := a.RemainingMoney(), M(195.5); !got.Equal(want) {
		t.Errorf("RemainingMoney() = %s, want %s", got, want)
	}

	if err := a.Withdraw(M(60)); !errors.Is(err, ErrInsufficientFunds) {
		t.Fatalf("Withdraw(60) error = %v, want ErrInsufficientFunds", err)
	}
	if got, want := a.SavingsVault(), M(50); !got.Equal(want) {
		t.Errorf("vault after rejected withdrawal = %s, want %s", got, want)
	}

	a.Deposit(M(10))
	if err := a.Withdraw(M(60)); err != nil {
		t.Fatalf("Withdraw(60) returned unexpected error: %v", err)
	}
	if !a.SavingsVault().IsZero() {
		t.Errorf("vault after draining = %s, want $0.00", a.SavingsVault())
	}
}
