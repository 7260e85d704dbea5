package tracker

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	md "github.com/nao1215/markdown"
)

// WriteReport writes the full state of one account as a fixed-layout text
// block: identity fields, balances, the expense table, and the expense
// total. The output is human-readable and not intended for re-parsing.
func WriteReport(w io.Writer, a *Account) error {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Expense Report for %s", a.Name()))
	doc.PlainText(fmt.Sprintf("Name: %s", a.Name()))
	doc.PlainText(fmt.Sprintf("Username: %s", a.Username()))
	doc.PlainText(fmt.Sprintf("Total Weekly Income: %s", a.TotalWeeklyIncome()))
	doc.PlainText(fmt.Sprintf("Weekly Savings Target: %s", a.WeeklySavingsTarget()))
	doc.PlainText(fmt.Sprintf("Savings Vault Balance: %s", a.SavingsVault()))

	doc.H2("Expense Details")
	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignLeft,
		},
		Header: []string{"Title", "Category", "Amount", "Date and Time"},
		Rows:   [][]string{},
	}
	for _, e := range a.Expenses() {
		table.Rows = append(table.Rows, []string{
			e.Title(),
			e.Category().String(),
			e.Amount().String(),
			e.When().String(),
		})
	}
	doc.Table(table)
	doc.PlainText(fmt.Sprintf("Total Expenses: %s", a.TotalExpenses()))

	if _, err := io.WriteString(w, doc.String()); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

// ReportFilename returns the deterministic report file name for an account.
func ReportFilename(a *Account) string {
	return a.Username() + "_data.txt"
}

// SaveReport writes the account's report to "<username>_data.txt" under dir,
// unconditionally overwriting any existing file of that name, and returns
// the path written. I/O errors are reported to the caller; they never crash
// the process.
func SaveReport(dir string, a *Account) (string, error) {
	path := filepath.Join(dir, ReportFilename(a))

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("error opening report file %q for writing: %w", path, err)
	}
	defer f.Close()

	if err := WriteReport(f, a); err != nil {
		return "", fmt.Errorf("could not write report file %q: %w", path, err)
	}
	return path, nil
}
