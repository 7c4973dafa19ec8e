package cmd

import (
	"testing"

	"github.com/google/subcommands"
)

func TestRunAdd(t *testing.T) {
	t.Setenv("DASHBOARD_CONFIG", "")
	t.Setenv("DASHBOARD_STORAGE", t.TempDir())

	// No user is signed in yet.
	if got := runAdd("income", "salary", "1000", "2024-01-01"); got != subcommands.ExitUsageError {
		t.Fatalf("runAdd() without a user = %v, want ExitUsageError", got)
	}

	app, _, err := OpenApp()
	if err != nil {
		t.Fatal(err)
	}
	if _, err := app.SignIn("alice"); err != nil {
		t.Fatal(err)
	}

	testCases := []struct {
		name      string
		entryType string
		desc      string
		amount    string
		date      string
		want      subcommands.ExitStatus
	}{
		{name: "valid income", entryType: "income", desc: "salary", amount: "1000", date: "2024-01-01", want: subcommands.ExitSuccess},
		{name: "valid expense defaults date", entryType: "expense", desc: "rent", amount: "400", want: subcommands.ExitSuccess},
		{name: "unknown type", entryType: "transfer", desc: "x", amount: "1", want: subcommands.ExitUsageError},
		{name: "empty description", entryType: "income", desc: "", amount: "10", want: subcommands.ExitUsageError},
		{name: "empty amount", entryType: "income", desc: "x", amount: "", want: subcommands.ExitUsageError},
		{name: "non-numeric amount", entryType: "income", desc: "x", amount: "lots", want: subcommands.ExitUsageError},
		{name: "negative amount", entryType: "expense", desc: "x", amount: "-5", want: subcommands.ExitUsageError},
		{name: "bad date", entryType: "income", desc: "x", amount: "10", date: "someday", want: subcommands.ExitUsageError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := runAdd(tc.entryType, tc.desc, tc.amount, tc.date); got != tc.want {
				t.Errorf("runAdd(%q, %q, %q, %q) = %v, want %v", tc.entryType, tc.desc, tc.amount, tc.date, got, tc.want)
			}
		})
	}

	// Only the two valid entries were persisted.
	reloaded, _, err := OpenApp()
	if err != nil {
		t.Fatal(err)
	}
	if got := reloaded.Ledger().Len(); got != 2 {
		t.Errorf("ledger has %d transactions after the runs, want 2", got)
	}
}
