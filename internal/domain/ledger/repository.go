package ledger

import (
	"context"
	"time"
)

// EntryRecord is a stored book row: the typed payload serialized to JSON,
// with the date lifted out so the store can order and filter by it. One
// record per row, one logical store per book, mirroring the one-key-per-book
// layout the bookkeeping front-end kept in browser storage.
type EntryRecord struct {
	ID        string
	Book      Book
	EntryDate time.Time
	Data      []byte
	UpdatedAt time.Time
}

// Repository is the persistence boundary of the ledger engine. It is the
// key-value adapter of the system: get-all per book (optionally
// period-scoped), upsert, delete, plus opening balances keyed by
// (book, period).
type Repository interface {
	// ListEntries returns every row of a book, ordered by entry date
	// ascending. month/year of zero means the whole book.
	ListEntries(ctx context.Context, book Book, month, year int) ([]EntryRecord, error)

	// PutEntry upserts one row.
	PutEntry(ctx context.Context, rec EntryRecord) error

	// DeleteEntry removes one row. Returns ErrEntryNotFound when absent.
	DeleteEntry(ctx context.Context, book Book, id string) error

	GetOpeningBalance(ctx context.Context, book Book, period string) (OpeningBalance, error)
	UpsertOpeningBalance(ctx context.Context, ob OpeningBalance) error
}
