package renderer

import (
	"bytes"

	"github.com/etnz/dashboard"
	md "github.com/nao1215/markdown"
)

// Summary renders only the aggregate totals to a markdown string.
func Summary(t dashboard.Totals) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("Totals")
	doc.Table(totalsTable(t))
	return doc.String()
}

func totalsTable(t dashboard.Totals) md.TableSet {
	return md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{"", "Amount"},
		Rows: [][]string{
			{"Income", t.Income.String()},
			{"Expense", t.Expense.String()},
			{"Balance", t.Balance.String()},
		},
	}
}
