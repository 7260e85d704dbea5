package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/tracker"
	md "github.com/nao1215/markdown"
)

// BalancesMarkdown renders the remaining money, total savings, and vault
// balance of an account to a markdown string.
func BalancesMarkdown(a *tracker.Account) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Balances for %s", a.Name()))
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{"Balance", "Amount"},
		Rows: [][]string{
			{"Remaining money after expenses", a.RemainingMoney().String()},
			{"Total Savings", a.TotalSavings().String()},
			{"Savings Vault Balance", a.SavingsVault().String()},
		},
	})

	return doc.String()
}
