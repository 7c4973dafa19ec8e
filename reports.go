package dashboard

// DefaultHistoryLimit is the number of transactions the history list shows.
const DefaultHistoryLimit = 5

// DashboardReport is a snapshot of everything the dashboard view renders:
// the aggregate totals over the full ledger and the capped recent-history
// window. It is a pure value; rendering it has no effect on the state.
type DashboardReport struct {
	User    string        // empty when no user is signed in
	Totals  Totals        // computed over the entire ledger
	Recent  []Transaction // the visible window, a suffix of the ledger
	Entries int           // total number of transactions in the ledger
}

// Report builds the dashboard view state for the current session. The limit
// caps the recent-history window; values <= 0 fall back to
// DefaultHistoryLimit. Totals always cover the whole ledger, the window only
// affects the history list.
func (a *App) Report(limit int) *DashboardReport {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	user, _ := a.session.ActiveUser()
	return &DashboardReport{
		User:    user,
		Totals:  a.ledger.Totals(),
		Recent:  a.ledger.Tail(limit),
		Entries: a.ledger.Len(),
	}
}
