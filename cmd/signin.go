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
)

type signInCmd struct{}

func (*signInCmd) Name() string     { return "signin" }
func (*signInCmd) Synopsis() string { return "sign in as a user and load their ledger" }
func (*signInCmd) Usage() string {
	return `pfd signin <username>

  Sets the active user and loads their transactions. The username is
  remembered across runs until 'signout -forget'.
`
}

func (*signInCmd) SetFlags(f *flag.FlagSet) {}

func (c *signInCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	username := strings.Join(f.Args(), " ")

	app, cfg, err := OpenApp()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	name, err := app.SignIn(username)
	if errors.Is(err, dashboard.ErrEmptyUsername) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Welcome, %s!\n", name)
	printMarkdown(renderer.Dashboard(app.Report(cfg.History)))
	return subcommands.ExitSuccess
}
