package dashboard

import (
	"errors"
	"testing"
)

func TestParseEntryType(t *testing.T) {
	testCases := []struct {
		in      string
		want    EntryType
		wantErr bool
	}{
		{in: "income", want: Income},
		{in: "expense", want: Expense},
		{in: " income ", want: Income},
		{in: "", wantErr: true},
		{in: "Income", wantErr: true},
		{in: "transfer", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseEntryType(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("ParseEntryType(%q) = %v, want error", tc.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseEntryType(%q) returned an unexpected error: %v", tc.in, err)
			}
			if got != tc.want {
				t.Errorf("ParseEntryType(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestTransaction_Validate(t *testing.T) {
	testCases := []struct {
		name    string
		tx      Transaction
		wantErr error
	}{
		{
			name: "valid income",
			tx:   NewIncome(MustParse("2024-01-01"), "salary", M(1000, "INR")),
		},
		{
			name: "valid expense",
			tx:   NewExpense(MustParse("2024-01-02"), "rent", M(400, "INR")),
		},
		{
			name:    "empty description",
			tx:      NewIncome(MustParse("2024-01-01"), "", M(1000, "INR")),
			wantErr: ErrMissingFields,
		},
		{
			name:    "blank description",
			tx:      NewIncome(MustParse("2024-01-01"), "   ", M(1000, "INR")),
			wantErr: ErrMissingFields,
		},
		{
			name:    "missing type",
			tx:      Transaction{Description: "salary", Amount: M(1000, "INR"), Date: MustParse("2024-01-01")},
			wantErr: ErrMissingFields,
		},
		{
			name:    "negative amount",
			tx:      NewExpense(MustParse("2024-01-01"), "rent", M(-400, "INR")),
			wantErr: ErrNegativeAmount,
		},
		{
			name: "zero amount is allowed",
			tx:   NewExpense(MustParse("2024-01-01"), "freebie", M(0, "INR")),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.tx.Validate()
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("Validate() error = %v, want %v", err, tc.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Validate() returned an unexpected error: %v", err)
			}
			if !got.Equal(tc.tx) {
				t.Errorf("Validate() modified the transaction: got %v, want %v", got, tc.tx)
			}
		})
	}
}

func TestTransaction_Validate_DefaultsDate(t *testing.T) {
	tx := NewIncome(Date{}, "salary", M(1000, "INR"))
	got, err := tx.Validate()
	if err != nil {
		t.Fatalf("Validate() returned an unexpected error: %v", err)
	}
	if !got.Date.IsToday() {
		t.Errorf("Validate() date = %s, want today", got.Date)
	}
}

func TestTransaction_SignedAmount(t *testing.T) {
	income := NewIncome(MustParse("2024-01-01"), "salary", M(1000, "INR"))
	if got, want := income.SignedAmount(), "+₹1,000.00"; got != want {
		t.Errorf("income SignedAmount() = %q, want %q", got, want)
	}
	expense := NewExpense(MustParse("2024-01-02"), "rent", M(400, "INR"))
	if got, want := expense.SignedAmount(), "-₹400.00"; got != want {
		t.Errorf("expense SignedAmount() = %q, want %q", got, want)
	}
}

func TestTransaction_MarshalJSON(t *testing.T) {
	tx := NewIncome(MustParse("2024-01-01"), "salary", M(1000, "INR"))
	tx.ID = 42

	data, err := tx.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON() returned an unexpected error: %v", err)
	}

	want := `{"type":"income","desc":"salary","amount":1000,"date":"2024-01-01","id":42}`
	if string(data) != want {
		t.Errorf("MarshalJSON() = %s, want %s", data, want)
	}
}
