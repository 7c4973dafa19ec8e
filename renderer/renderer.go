// Package renderer turns dashboard reports into markdown documents.
//
// Rendering is a pure function of the report: the whole document is rebuilt
// on every call, there is no incremental update.
package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/dashboard"
	md "github.com/nao1215/markdown"
)

// Dashboard renders the full dashboard view: totals over the whole ledger,
// the capped recent-history window, and the charts.
func Dashboard(r *dashboard.DashboardReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	if r.User != "" {
		doc.H1(fmt.Sprintf("Dashboard for %s", r.User))
	} else {
		doc.H1("Dashboard")
		doc.PlainText("No user is signed in. Use `signin` to load a ledger.")
	}

	doc.H2("Totals")
	doc.Table(totalsTable(r.Totals))

	doc.H2(fmt.Sprintf("Recent transactions (%d of %d)", len(r.Recent), r.Entries))
	if len(r.Recent) == 0 {
		doc.PlainText("No transactions yet.")
	} else {
		doc.Table(historyTable(r.Recent))
	}

	if charts := Charts(r.Totals); charts != "" {
		doc.H2("Charts")
		doc.CodeBlocks(md.SyntaxHighlightText, charts)
	}

	return doc.String()
}

// Transactions renders a transaction listing to a markdown string.
func Transactions(txs []dashboard.Transaction) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Transactions")
	if len(txs) == 0 {
		doc.PlainText("No transactions.")
		return doc.String()
	}
	doc.Table(historyTable(txs))
	return doc.String()
}

func historyTable(txs []dashboard.Transaction) md.TableSet {
	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{"Date", "Description", "Amount"},
		Rows:   [][]string{},
	}
	for _, tx := range txs {
		table.Rows = append(table.Rows, []string{
			tx.Date.String(),
			tx.Description,
			tx.SignedAmount(),
		})
	}
	return table
}
