package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/dashboard/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	completion()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// completion serves shell-completion requests and returns immediately on a
// normal run.
func completion() {
	entryFlags := map[string]complete.Predictor{
		"d":  predict.Something,
		"a":  predict.Something,
		"on": predict.Something,
	}
	addFlags := map[string]complete.Predictor{
		"t":  predict.Set{"income", "expense"},
		"d":  predict.Something,
		"a":  predict.Something,
		"on": predict.Something,
	}
	c := &complete.Command{
		Sub: map[string]*complete.Command{
			"signin":  {},
			"signout": {Flags: map[string]complete.Predictor{"forget": predict.Nothing}},
			"add":     {Flags: addFlags},
			"income":  {Flags: entryFlags},
			"expense": {Flags: entryFlags},
			"summary": {Flags: map[string]complete.Predictor{
				"n":      predict.Something,
				"totals": predict.Nothing,
			}},
			"tx": {Flags: map[string]complete.Predictor{
				"head": predict.Something,
				"tail": predict.Something,
			}},
			"fmt": {},
		},
	}
	c.Complete("pfd")
}
