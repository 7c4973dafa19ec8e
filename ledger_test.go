package dashboard

import (
	"testing"
)

func testLedger7(t *testing.T) *Ledger {
	t.Helper()
	ledger := NewLedger("INR")
	ledger.Append(
		NewIncome(MustParse("2024-01-01"), "salary", M(1000, "INR")),
		NewExpense(MustParse("2024-01-02"), "rent", M(400, "INR")),
		NewIncome(MustParse("2024-01-03"), "bonus", M(200, "INR")),
		NewExpense(MustParse("2024-01-04"), "groceries", M(150, "INR")),
		NewExpense(MustParse("2024-01-05"), "transport", M(50, "INR")),
		NewIncome(MustParse("2024-01-06"), "refund", M(30, "INR")),
		NewExpense(MustParse("2024-01-07"), "coffee", M(20, "INR")),
	)
	return ledger
}

func TestLedger_Totals(t *testing.T) {
	ledger := testLedger7(t)

	totals := ledger.Totals()

	// Totals cover the entire ledger, not just the visible window.
	if want := M(1230, "INR"); !totals.Income.Equal(want) {
		t.Errorf("Totals().Income = %s, want %s", totals.Income, want)
	}
	if want := M(620, "INR"); !totals.Expense.Equal(want) {
		t.Errorf("Totals().Expense = %s, want %s", totals.Expense, want)
	}
	if want := M(610, "INR"); !totals.Balance.Equal(want) {
		t.Errorf("Totals().Balance = %s, want %s", totals.Balance, want)
	}
}

func TestLedger_Totals_Empty(t *testing.T) {
	totals := NewLedger("INR").Totals()
	if !totals.Income.IsZero() || !totals.Expense.IsZero() || !totals.Balance.IsZero() {
		t.Errorf("empty ledger totals = %+v, want all zero", totals)
	}
	if got := totals.Balance.Currency(); got != "INR" {
		t.Errorf("empty ledger balance currency = %q, want INR", got)
	}
}

func TestLedger_Tail(t *testing.T) {
	ledger := testLedger7(t)

	testCases := []struct {
		name      string
		n         int
		wantLen   int
		wantFirst string // description of the first returned transaction
	}{
		{name: "window smaller than ledger", n: 5, wantLen: 5, wantFirst: "bonus"},
		{name: "window equal to ledger", n: 7, wantLen: 7, wantFirst: "salary"},
		{name: "window larger than ledger", n: 10, wantLen: 7, wantFirst: "salary"},
		{name: "window of one", n: 1, wantLen: 1, wantFirst: "coffee"},
		{name: "zero window", n: 0, wantLen: 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := ledger.Tail(tc.n)
			if len(got) != tc.wantLen {
				t.Fatalf("Tail(%d) returned %d transactions, want %d", tc.n, len(got), tc.wantLen)
			}
			if tc.wantLen > 0 && got[0].Description != tc.wantFirst {
				t.Errorf("Tail(%d)[0].Description = %q, want %q", tc.n, got[0].Description, tc.wantFirst)
			}
		})
	}
}

func TestLedger_Tail_IsSuffix(t *testing.T) {
	ledger := testLedger7(t)
	got := ledger.Tail(5)

	// The window must be a suffix of the ledger in insertion order.
	offset := ledger.Len() - len(got)
	for i, tx := range got {
		want := ledger.transactions[offset+i]
		if !tx.Equal(want) {
			t.Errorf("Tail(5)[%d] = %v, want %v", i, tx, want)
		}
	}
}

func TestLedger_Last(t *testing.T) {
	ledger := NewLedger("INR")
	if _, ok := ledger.Last(); ok {
		t.Fatal("Last() on an empty ledger reported a transaction")
	}
	ledger.Append(NewIncome(MustParse("2024-01-01"), "salary", M(1000, "INR")))
	ledger.Append(NewExpense(MustParse("2024-01-02"), "rent", M(400, "INR")))
	last, ok := ledger.Last()
	if !ok || last.Description != "rent" {
		t.Errorf("Last() = %v, %v, want rent, true", last, ok)
	}
}
