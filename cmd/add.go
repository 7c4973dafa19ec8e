package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/dashboard"
	"github.com/etnz/dashboard/renderer"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type addCmd struct {
	entryType string
	desc      string
	amount    string
	date      string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "record a transaction for the active user" }
func (*addCmd) Usage() string {
	return `pfd add -t <income|expense> -d <description> -a <amount> [-on <date>]

  Appends a transaction to the active user's ledger and persists it
  immediately. The date defaults to today.
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.entryType, "t", "income", "Entry type: income or expense.")
	f.StringVar(&c.desc, "d", "", "Description of the transaction.")
	f.StringVar(&c.amount, "a", "", "Amount, a non-negative number.")
	f.StringVar(&c.date, "on", "", "Date of the transaction. Defaults to today.")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return runAdd(c.entryType, c.desc, c.amount, c.date)
}

// runAdd is the shared implementation of add, income and expense.
func runAdd(entryType, desc, amountStr, dateStr string) subcommands.ExitStatus {
	typ, err := dashboard.ParseEntryType(entryType)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	if strings.TrimSpace(amountStr) == "" {
		fmt.Fprintf(os.Stderr, "Error: %v\n", dashboard.ErrMissingFields)
		return subcommands.ExitUsageError
	}
	value, err := decimal.NewFromString(strings.TrimSpace(amountStr))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid amount %q: %v\n", amountStr, err)
		return subcommands.ExitUsageError
	}

	var day dashboard.Date
	if dateStr != "" {
		day, err = dashboard.ParseDate(dateStr)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	app, cfg, err := OpenApp()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	tx := dashboard.Transaction{
		Type:        typ,
		Description: desc,
		Amount:      dashboard.M(value, cfg.Currency),
		Date:        day,
	}
	if _, err := app.Add(tx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if errors.Is(err, dashboard.ErrNoActiveUser) ||
			errors.Is(err, dashboard.ErrMissingFields) ||
			errors.Is(err, dashboard.ErrNegativeAmount) {
			return subcommands.ExitUsageError
		}
		return subcommands.ExitFailure
	}

	fmt.Println("Transaction added successfully!")
	printMarkdown(renderer.Dashboard(app.Report(cfg.History)))
	return subcommands.ExitSuccess
}
