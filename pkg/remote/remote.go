// Package remote defines the date-scoped record store the journal syncs
// against. Backends live in the subpackages; the journal core only sees this
// interface.
package remote

import "context"

// Row is one persisted entry at the store boundary. Date is always a
// YYYY-MM-DD key with zero-padded month and day.
type Row struct {
	Date    string `json:"date"`
	Content string `json:"content"`
}

// Store is the remote persistence contract. All three operations are scoped
// to a user; the store resolves conflicts by keyed replace on (user, date).
type Store interface {
	// FetchEntries returns every row for user whose date falls inside the
	// inclusive [start, end] key range. A year of entries is at most 366
	// rows, so no pagination.
	FetchEntries(ctx context.Context, user, start, end string) ([]Row, error)

	// UpsertEntry writes content at (user, date), replacing any prior row.
	UpsertEntry(ctx context.Context, user, date, content string) error

	// DeleteEntry removes the row at (user, date). Deleting a row that does
	// not exist is not an error.
	DeleteEntry(ctx context.Context, user, date string) error
}
