package dashboard

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// entryRecord mirrors the persisted shape of a single transaction:
// {"type":"income","desc":"salary","amount":1000,"date":"2024-01-01","id":1704067200000}
type entryRecord struct {
	Type   string          `json:"type"`
	Desc   string          `json:"desc"`
	Amount decimal.Decimal `json:"amount"`
	Date   Date            `json:"date"`
	ID     int64           `json:"id"`
}

// DecodeLedger decodes a user's persisted blob, a JSON array of transaction
// records, into a Ledger in the given currency.
//
// The decoder is strict: a blob that is not a JSON array, an unknown entry
// type, an unparseable date or a negative amount all fail with an error.
// Callers loading from storage absorb that error into an empty ledger.
func DecodeLedger(r io.Reader, currency string) (*Ledger, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading from input: %w", err)
	}

	var records []entryRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("could not decode transactions blob: %w", err)
	}

	ledger := NewLedger(currency)
	for i, rec := range records {
		typ, err := ParseEntryType(rec.Type)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		amount := M(rec.Amount, currency)
		if amount.IsNegative() {
			return nil, fmt.Errorf("record %d: %w, got %s", i, ErrNegativeAmount, amount)
		}
		ledger.Append(Transaction{
			Type:        typ,
			Description: rec.Desc,
			Amount:      amount,
			Date:        rec.Date,
			ID:          rec.ID,
		})
	}
	return ledger, nil
}

// EncodeLedger persists a ledger to an io.Writer as a JSON array of
// transaction records. It ensures that the JSON keys within each record are
// in a stable order for canonical output.
func EncodeLedger(w io.Writer, ledger *Ledger) error {
	decimal.MarshalJSONWithoutQuotes = true

	if _, err := io.WriteString(w, "["); err != nil {
		return fmt.Errorf("failed to write transactions blob: %w", err)
	}
	for i, tx := range ledger.Transactions() {
		if i > 0 {
			if _, err := io.WriteString(w, ","); err != nil {
				return fmt.Errorf("failed to write transactions blob: %w", err)
			}
		}
		data, err := json.Marshal(tx)
		if err != nil {
			return fmt.Errorf("failed to marshal transaction %d: %w", i, err)
		}
		if _, err := w.Write(data); err != nil {
			return fmt.Errorf("failed to write transactions blob: %w", err)
		}
	}
	if _, err := io.WriteString(w, "]"); err != nil {
		return fmt.Errorf("failed to write transactions blob: %w", err)
	}
	return nil
}
