// Package cmd implements the CLI application to manage the dashboard.
package cmd

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/dashboard"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&signInCmd{}, "session")
	c.Register(&signOutCmd{}, "session")

	c.Register(&addCmd{}, "transactions")
	c.Register(&incomeCmd{}, "transactions")
	c.Register(&expenseCmd{}, "transactions")
	c.Register(&txCmd{}, "transactions")
	c.Register(&fmtCmd{}, "transactions")

	c.Register(&summaryCmd{}, "reports")
}

// OpenApp loads the configuration, opens the store and restores the
// application state (active user plus their ledger).
func OpenApp() (*dashboard.App, Config, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, cfg, err
	}
	store, err := dashboard.OpenStore(cfg.StorageDir)
	if err != nil {
		return nil, cfg, err
	}
	return dashboard.NewApp(store, cfg.Currency), cfg, nil
}

// printMarkdown renders a markdown document to the terminal. When rendering
// fails the raw source is printed instead, so output is never lost.
func printMarkdown(source string) {
	out, err := glamour.Render(source, "auto")
	if err != nil {
		fmt.Println(source)
		return
	}
	fmt.Print(out)
}
