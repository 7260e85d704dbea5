package tracker

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// The registry is persisted as a flat record file: one comma-separated line
// per account.
//
//	name,username,password,totalWeeklyIncome,savingsVault
//
// Historical files carry only the first 4 fields; the reader accepts both
// forms and defaults a missing vault balance to zero, so that a file written
// by EncodeRegistry round-trips unchanged. Fields are not escaped: a comma
// inside a name corrupts the record. Neither the savings target nor the
// expense log is persisted here; expenses only ever reach the per-user
// report file.

const registryFields = 4 // minimum fields per record

// DecodeRegistry decodes accounts from a stream of comma-separated records,
// one per line, and returns a Registry in file order. Empty lines are
// skipped. The whole load fails on the first malformed line (too few or too
// many fields, or a non-numeric amount).
func DecodeRegistry(r io.Reader) (*Registry, error) {
	registry := NewRegistry()
	scanner := bufio.NewScanner(r)

	line := 0
	for scanner.Scan() {
		line++
		record := scanner.Text()
		if strings.TrimSpace(record) == "" {
			continue // Skip empty lines
		}

		fields := strings.Split(record, ",")
		if len(fields) < registryFields || len(fields) > registryFields+1 {
			return nil, fmt.Errorf("line %d: record %q has %d fields, want 4 or 5", line, record, len(fields))
		}

		income, err := ParseMoney(fields[3])
		if err != nil {
			return nil, fmt.Errorf("line %d: income: %w", line, err)
		}

		a := NewAccount(fields[0], fields[1], fields[2], income)
		if len(fields) == registryFields+1 {
			vault, err := ParseMoney(fields[4])
			if err != nil {
				return nil, fmt.Errorf("line %d: vault: %w", line, err)
			}
			a.vault = vault
		}
		registry.accounts = append(registry.accounts, a)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading from input: %w", err)
	}

	return registry, nil
}

// EncodeAccount writes a single account as a comma-separated record followed
// by a newline.
func EncodeAccount(w io.Writer, a *Account) error {
	_, err := fmt.Fprintf(w, "%s,%s,%s,%s,%s\n",
		a.name, a.username, a.password, a.income.Text(), a.vault.Text())
	if err != nil {
		return fmt.Errorf("failed to write account record: %w", err)
	}
	return nil
}

// EncodeRegistry persists all accounts to an io.Writer, one record per line,
// in registration order.
func EncodeRegistry(w io.Writer, registry *Registry) error {
	for _, a := range registry.accounts {
		if err := EncodeAccount(w, a); err != nil {
			return err
		}
	}
	return nil
}
