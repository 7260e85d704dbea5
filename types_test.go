package tracker

import (
	"testing"
	"time"
)

func TestParseCategory(t *testing.T) {
	for _, c := range Categories() {
		got, err := ParseCategory(c.String())
		if err != nil {
			t.Errorf("ParseCategory(%q) returned unexpected error: %v", c, err)
		}
		if got != c {
			t.Errorf("ParseCategory(%q) = %q", c, got)
		}
	}
	for _, s := range []string{"", "personal", "Groceries"} {
		if _, err := ParseCategory(s); err == nil {
			t.Errorf("ParseCategory(%q) = nil error, want failure", s)
		}
	}
}

func TestParseTimestamp(t *testing.T) {
	ts, err := ParseTimestamp("2025-08-01 09:30:05")
	if err != nil {
		t.Fatalf("ParseTimestamp() returned unexpected error: %v", err)
	}
	if want := NewTimestamp(2025, time.August, 1, 9, 30, 5); ts != want {
		t.Errorf("ParseTimestamp() = %v, want %v", ts, want)
	}
	if got, want := ts.String(), "2025-08-01 09:30:05"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	if _, err := ParseTimestamp("2025-08-01"); err == nil {
		t.Error("ParseTimestamp without a time = nil error, want failure")
	}
}

func TestMoney(t *testing.T) {
	if got, want := M(4.5).String(), "$4.50"; got != want {
		t.Errorf("M(4.5).String() = %q, want %q", got, want)
	}
	if got, want := M(304.5).Text(), "304.5"; got != want {
		t.Errorf("M(304.5).Text() = %q, want %q", got, want)
	}

	sum := M(100).Sub(M(20)).Sub(M(90))
	if !sum.Equal(M(-10)) || !sum.IsNegative() {
		t.Errorf("100-20-90 = %s, want -$10.00", sum)
	}

	parsed, err := ParseMoney("300.25")
	if err != nil {
		t.Fatalf("ParseMoney() returned unexpected error: %v", err)
	}
	if !parsed.Equal(M(300.25)) {
		t.Errorf("ParseMoney(300.25) = %s", parsed)
	}
	if _, err := ParseMoney("12,5"); err == nil {
		t.Error("ParseMoney(12,5) = nil error, want failure")
	}
}

func TestLoadRegistry_MissingFile(t *testing.T) {
	registry, err := LoadRegistry(t.TempDir() + "/users.txt")
	if err != nil {
		t.Fatalf("LoadRegistry() on a missing file returned unexpected error: %v", err)
	}
	if registry.Len() != 0 {
		t.Errorf("LoadRegistry() on a missing file loaded %d accounts, want 0", registry.Len())
	}
}

func TestSaveLoadRegistry(t *testing.T) {
	path := t.TempDir() + "/users.txt"

	registry := NewRegistry()
	registry.Register("Alice", "alice", "pw1", M(500), M(50))
	if err := SaveRegistry(path, registry); err != nil {
		t.Fatalf("SaveRegistry() returned unexpected error: %v", err)
	}

	loaded, err := LoadRegistry(path)
	if err != nil {
		t.Fatalf("LoadRegistry() returned unexpected error: %v", err)
	}
	a := loaded.Find("alice")
	if a == nil {
		t.Fatal("Find(alice) = nil after reload")
	}
	if !a.SavingsVault().Equal(M(50)) {
		t.Errorf("reloaded vault = %s, want $50.00", a.SavingsVault())
	}
}
