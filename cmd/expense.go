package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
)

type expenseCmd struct {
	desc   string
	amount string
	date   string
}

func (*expenseCmd) Name() string     { return "expense" }
func (*expenseCmd) Synopsis() string { return "record an expense entry" }
func (*expenseCmd) Usage() string {
	return `pfd expense -d <description> -a <amount> [-on <date>]

  Shorthand for 'add -t expense'.
`
}

func (c *expenseCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.desc, "d", "", "Description of the expense.")
	f.StringVar(&c.amount, "a", "", "Amount, a non-negative number.")
	f.StringVar(&c.date, "on", "", "Date of the expense. Defaults to today.")
}

func (c *expenseCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return runAdd("expense", c.desc, c.amount, c.date)
}
