package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/tracker"
	md "github.com/nao1215/markdown"
)

// ExpensesMarkdown renders the expense log of an account as a markdown
// table, followed by the expense total.
func ExpensesMarkdown(a *tracker.Account) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Expense Details for %s", a.Name()))
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

	return doc.String()
}
