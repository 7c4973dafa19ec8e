// Package dashboard implements a local personal finance dashboard: per-user
// ledgers of income and expense entries, persisted as text blobs in a
// key/value store, with running totals over the full ledger and a capped
// recent-history window.
//
// Storage is a flat key/value layout: the key "loggedInUser" holds the
// active username, and "transactions_<user>" holds that user's ledger as a
// JSON array.
package dashboard
