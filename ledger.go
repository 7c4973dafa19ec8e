package dashboard

import "iter"

// Ledger represents the ordered list of one user's transactions.
//
// In a Ledger transactions are kept in insertion order: appending is the only
// mutation, so the list reads oldest-first.
type Ledger struct {
	currency     string
	transactions []Transaction
}

// NewLedger creates an empty ledger whose amounts are in the given currency.
func NewLedger(currency string) *Ledger {
	return &Ledger{
		currency:     currency,
		transactions: make([]Transaction, 0),
	}
}

// Currency returns the currency the ledger totals are computed in.
func (l *Ledger) Currency() string { return l.currency }

// Len returns the number of transactions in the ledger.
func (l *Ledger) Len() int { return len(l.transactions) }

// Append appends transactions to this ledger, preserving insertion order.
func (l *Ledger) Append(txs ...Transaction) {
	l.transactions = append(l.transactions, txs...)
}

// Transactions returns an iterator that yields each transaction in its original order.
func (l *Ledger) Transactions() iter.Seq2[int, Transaction] {
	return func(yield func(int, Transaction) bool) {
		for i, tx := range l.transactions {
			if !yield(i, tx) {
				return
			}
		}
	}
}

// Last returns the most recently appended transaction.
// It returns false if the ledger has no transactions.
func (l *Ledger) Last() (Transaction, bool) {
	if len(l.transactions) == 0 {
		return Transaction{}, false
	}
	return l.transactions[len(l.transactions)-1], true
}

// Totals holds the aggregate values displayed on the dashboard.
type Totals struct {
	Income  Money
	Expense Money
	Balance Money
}

// Totals computes the aggregates over the entire ledger, not just the
// visible window.
func (l *Ledger) Totals() Totals {
	income := M(0, l.currency)
	expense := M(0, l.currency)
	for _, tx := range l.transactions {
		switch tx.Type {
		case Income:
			income = income.Add(tx.Amount)
		case Expense:
			expense = expense.Add(tx.Amount)
		}
	}
	return Totals{
		Income:  income,
		Expense: expense,
		Balance: income.Sub(expense),
	}
}

// Tail returns the last n transactions in insertion order, the visible
// window of the history list. If the ledger holds fewer than n, all of them
// are returned. The result is always a suffix of the ledger.
func (l *Ledger) Tail(n int) []Transaction {
	if n <= 0 || len(l.transactions) == 0 {
		return nil
	}
	if len(l.transactions) <= n {
		return append([]Transaction(nil), l.transactions...)
	}
	return append([]Transaction(nil), l.transactions[len(l.transactions)-n:]...)
}
