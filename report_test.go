package tracker

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func reportAccount(t *testing.T) *Account {
	t.Helper()
	a := NewAccount("Alice", "alice", "pw1", M(500))
	a.Deposit(M(50))
	a.AddExpense("Coffee", Personal, M(4.5), NewTimestamp(2025, time.August, 1, 9, 30, 0))
	a.AddExpense("Rent", Bills, M(300), NewTimestamp(2025, time.August, 2, 18, 0, 5))
	return a
}

func TestWriteReport(t *testing.T) {
	a := reportAccount(t)

	var buf bytes.Buffer
	if err := WriteReport(&buf, a); err != nil {
		t.Fatalf("WriteReport() returned an unexpected error: %v", err)
	}
	report := buf.String()

	wants := []string{
		"Expense Report for Alice",
		"Username: alice",
		"Total Weekly Income: $500.00",
		"Weekly Savings Target: $0.00",
		"Savings Vault Balance: $50.00",
		"Coffee",
		"$4.50",
		"2025-08-01 09:30:00",
		"Rent",
		"$300.00",
		"2025-08-02 18:00:05",
		"Total Expenses: $304.50",
	}
	for _, want := range wants {
		if !strings.Contains(report, want) {
			t.Errorf("report does not contain %q:\n%s", want, report)
		}
	}
}

func TestSaveReport(t *testing.T) {
	a := reportAccount(t)
	dir := t.TempDir()

	path, err := SaveReport(dir, a)
	if err != nil {
		t.Fatalf("SaveReport() returned an unexpected error: %v", err)
	}
	if want := filepath.Join(dir, "alice_data.txt"); path != want {
		t.Errorf("SaveReport() path = %q, want %q", path, want)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("could not read report file back: %v", err)
	}
	if !strings.Contains(string(content), "Total Expenses: $304.50") {
		t.Errorf("report file is missing the expense total:\n%s", content)
	}
}

func TestSaveReport_Overwrites(t *testing.T) {
	a := reportAccount(t)
	dir := t.TempDir()

	stale := filepath.Join(dir, ReportFilename(a))
	if err := os.WriteFile(stale, []byte("stale content"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := SaveReport(dir, a); err != nil {
		t.Fatalf("SaveReport() returned an unexpected error: %v", err)
	}
	content, err := os.ReadFile(stale)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(content), "stale content") {
		t.Error("SaveReport() did not overwrite the existing report file")
	}
}

func TestSaveReport_UnwritablePath(t *testing.T) {
	a := reportAccount(t)

	if _, err := SaveReport(filepath.Join(t.TempDir(), "no-such-dir"), a); err == nil {
		t.Error("SaveReport() to a missing directory = nil error, want failure")
	}
}
