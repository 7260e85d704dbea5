package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/tracker"
	md "github.com/nao1215/markdown"
)

// UsersMarkdown renders the account registry as a markdown table. Passwords
// are not rendered.
func UsersMarkdown(registry *tracker.Registry) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Registered Users")
	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Username", "Name", "Weekly Income", "Vault"},
		Rows:   [][]string{},
	}
	for _, a := range registry.Accounts() {
		table.Rows = append(table.Rows, []string{
			a.Username(),
			a.Name(),
			a.TotalWeeklyIncome().String(),
			a.SavingsVault().String(),
		})
	}
	doc.Table(table)
	doc.PlainText(fmt.Sprintf("%d user(s) registered.", registry.Len()))

	return doc.String()
}
