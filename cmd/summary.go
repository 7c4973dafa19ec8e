package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/dashboard/renderer"
	"github.com/google/subcommands"
)

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	history int
	totals  bool
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the dashboard: totals, history and charts" }
func (*summaryCmd) Usage() string {
	return `pfd summary [-n <count>] [-totals]

  Displays the dashboard for the active user: income, expense and balance
  over the whole ledger, the most recent transactions, and the charts.
  With -totals only the aggregate table is printed.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.history, "n", 0, "Number of recent transactions to display. Defaults to the configured history window.")
	f.BoolVar(&c.totals, "totals", false, "Only display the totals table.")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	app, cfg, err := OpenApp()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	limit := c.history
	if limit <= 0 {
		limit = cfg.History
	}

	if c.totals {
		printMarkdown(renderer.Summary(app.Ledger().Totals()))
		return subcommands.ExitSuccess
	}
	printMarkdown(renderer.Dashboard(app.Report(limit)))
	return subcommands.ExitSuccess
}
