package dashboard

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"
)

// ErrNoActiveUser is returned when adding a transaction without a signed-in
// user.
var ErrNoActiveUser = errors.New("please sign in first")

// App owns the dashboard state: the session and the active user's ledger.
// Every mutation goes through an App operation, which persists the full
// ledger blob synchronously before returning.
type App struct {
	store    *Store
	session  *Session
	currency string
	ledger   *Ledger
}

// NewApp creates the application state over a store: the persisted active
// user (if any) is restored and their ledger loaded.
func NewApp(store *Store, currency string) *App {
	if currency == "" {
		currency = DefaultCurrency
	}
	a := &App{
		store:    store,
		session:  NewSession(store),
		currency: currency,
	}
	a.Reload()
	return a
}

// Session returns the session manager.
func (a *App) Session() *Session { return a.session }

// Ledger returns the active user's in-memory ledger. With no active user it
// is empty.
func (a *App) Ledger() *Ledger { return a.ledger }

// Reload replaces the in-memory ledger with the persisted one for the
// current active user. With no active user the ledger is simply empty.
func (a *App) Reload() {
	user, _ := a.session.ActiveUser()
	a.ledger = LoadLedger(a.store, a.currency, user)
}

// LoadLedger reads a user's ledger from the store. An empty user yields an
// empty ledger without touching the store. A missing key, malformed blob or
// schema mismatch also yields an empty ledger: decode failures are absorbed
// here, never propagated.
func LoadLedger(store *Store, currency, user string) *Ledger {
	if currency == "" {
		currency = DefaultCurrency
	}
	if user == "" {
		return NewLedger(currency)
	}
	raw, ok := store.Get(LedgerKey(user))
	if !ok {
		return NewLedger(currency)
	}
	ledger, err := DecodeLedger(strings.NewReader(raw), currency)
	if err != nil {
		log.Printf("ignoring unreadable ledger for %q: %v", user, err)
		return NewLedger(currency)
	}
	return ledger
}

// SignIn activates the given user and loads their ledger.
func (a *App) SignIn(username string) (string, error) {
	name, err := a.session.SignIn(username)
	if err != nil {
		return "", err
	}
	a.Reload()
	return name, nil
}

// SignOut clears the active user from memory and resets the view to the
// empty state. Persisted data, including the active-user key, survives.
func (a *App) SignOut() {
	a.session.SignOut()
	a.Reload()
}

// Forget signs out and removes the persisted active-user key.
func (a *App) Forget() error {
	if err := a.session.Forget(); err != nil {
		return err
	}
	a.Reload()
	return nil
}

// Add validates the transaction, mints its id, appends it to the active
// user's ledger and persists the full blob before returning. It returns the
// appended transaction.
//
// With no active user it fails with ErrNoActiveUser and nothing changes.
func (a *App) Add(tx Transaction) (Transaction, error) {
	user, ok := a.session.ActiveUser()
	if !ok {
		return tx, ErrNoActiveUser
	}

	tx, err := tx.Validate()
	if err != nil {
		return tx, err
	}
	tx.ID = mintID()

	a.ledger.Append(tx)
	if err := a.saveLedger(user); err != nil {
		return tx, err
	}
	return tx, nil
}

// saveLedger overwrites the user's persisted blob with the full in-memory
// ledger. There is no incremental append format.
func (a *App) saveLedger(user string) error {
	var b strings.Builder
	if err := EncodeLedger(&b, a.ledger); err != nil {
		return fmt.Errorf("could not encode ledger for %q: %w", user, err)
	}
	return a.store.Set(LedgerKey(user), b.String())
}

// Fmt validates and rewrites the active user's persisted blob in canonical
// form. It reports how many transactions were written.
func (a *App) Fmt() (int, error) {
	user, ok := a.session.ActiveUser()
	if !ok {
		return 0, ErrNoActiveUser
	}
	if err := a.saveLedger(user); err != nil {
		return 0, err
	}
	return a.ledger.Len(), nil
}

// mintID derives a transaction id from the wall clock. Two entries in the
// same millisecond may collide; ids are never used as lookup keys.
func mintID() int64 {
	return time.Now().UnixMilli()
}
