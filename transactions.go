package dashboard

import (
	"errors"
	"fmt"
	"strings"
)

// EntryType is a typed string for identifying the two kinds of entries.
type EntryType string

// Entry types used for identifying transactions.
const (
	Income  EntryType = "income"
	Expense EntryType = "expense"
)

// ParseEntryType parses a string into an EntryType.
func ParseEntryType(s string) (EntryType, error) {
	switch EntryType(strings.TrimSpace(s)) {
	case Income:
		return Income, nil
	case Expense:
		return Expense, nil
	default:
		return "", fmt.Errorf("unknown entry type: %q", s)
	}
}

// Validation errors surfaced to the user. Anything else is absorbed at the
// storage boundary.
var (
	// ErrMissingFields is returned when a required transaction field is empty.
	ErrMissingFields = errors.New("please fill out all fields")
	// ErrNegativeAmount is returned when an amount is negative. A negative
	// amount would double-count against the totals, so it is rejected up
	// front.
	ErrNegativeAmount = errors.New("amount must not be negative")
)

// Transaction is a single income or expense record in a user's ledger.
type Transaction struct {
	Type        EntryType // income or expense
	Description string    // free-form, required
	Amount      Money     // non-negative
	Date        Date      // day the entry applies to
	ID          int64     // timestamp-derived, unique-ish within one ledger
}

// NewIncome creates an income transaction. The id is minted on append.
func NewIncome(day Date, desc string, amount Money) Transaction {
	return Transaction{Type: Income, Description: desc, Amount: amount, Date: day}
}

// NewExpense creates an expense transaction. The id is minted on append.
func NewExpense(day Date, desc string, amount Money) Transaction {
	return Transaction{Type: Expense, Description: desc, Amount: amount, Date: day}
}

// Validate checks the transaction for correctness and applies quick fixes
// where applicable (a zero date becomes today). It returns the validated
// (and potentially modified) transaction or an error.
func (t Transaction) Validate() (Transaction, error) {
	if t.Type != Income && t.Type != Expense {
		return t, fmt.Errorf("%w: type", ErrMissingFields)
	}
	if strings.TrimSpace(t.Description) == "" {
		return t, fmt.Errorf("%w: description", ErrMissingFields)
	}
	if t.Date.IsZero() {
		t.Date = Today()
	}
	if t.Amount.IsNegative() {
		return t, fmt.Errorf("%w, got %s", ErrNegativeAmount, t.Amount)
	}
	return t, nil
}

// Equal reports whether two transactions carry the same data, ignoring the
// minted id.
func (t Transaction) Equal(o Transaction) bool {
	return t.Type == o.Type &&
		t.Description == o.Description &&
		t.Amount.Equal(o.Amount) &&
		t.Date == o.Date
}

// SignedAmount renders the amount the way the history list shows it:
// "+₹1,000.00" for income, "-₹400.00" for expense.
func (t Transaction) SignedAmount() string {
	if t.Type == Expense {
		return "-" + t.Amount.String()
	}
	return "+" + t.Amount.String()
}

// MarshalJSON implements the json.Marshaler interface for Transaction,
// keeping the persisted key order stable.
func (t Transaction) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("type", t.Type)
	w.Append("desc", t.Description)
	w.Append("amount", t.Amount.Decimal())
	w.Append("date", t.Date)
	w.Append("id", t.ID)
	return w.MarshalJSON()
}
