package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/dashboard/renderer"
	"github.com/google/subcommands"
)

type signOutCmd struct {
	forget bool
}

func (*signOutCmd) Name() string     { return "signout" }
func (*signOutCmd) Synopsis() string { return "sign out of the current session" }
func (*signOutCmd) Usage() string {
	return `pfd signout [-forget]

  Clears the current session without deleting any data. By default the
  remembered identity survives, so the next run resolves the same user;
  -forget removes it as well.
`
}

func (c *signOutCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.forget, "forget", false, "Also remove the remembered identity.")
}

func (c *signOutCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	app, cfg, err := OpenApp()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if c.forget {
		if err := app.Forget(); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
	} else {
		app.SignOut()
	}

	fmt.Println("You have signed out!")
	printMarkdown(renderer.Dashboard(app.Report(cfg.History)))
	return subcommands.ExitSuccess
}
