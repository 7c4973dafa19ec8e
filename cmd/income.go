package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
)

type incomeCmd struct {
	desc   string
	amount string
	date   string
}

func (*incomeCmd) Name() string     { return "income" }
func (*incomeCmd) Synopsis() string { return "record an income entry" }
func (*incomeCmd) Usage() string {
	return `pfd income -d <description> -a <amount> [-on <date>]

  Shorthand for 'add -t income'.
`
}

func (c *incomeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.desc, "d", "", "Description of the income.")
	f.StringVar(&c.amount, "a", "", "Amount, a non-negative number.")
	f.StringVar(&c.date, "on", "", "Date of the income. Defaults to today.")
}

func (c *incomeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return runAdd("income", c.desc, c.amount, c.date)
}
