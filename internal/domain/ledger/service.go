package ledger

import (
	"context"
	"encoding/json"
)

type Service interface {
	// GetBook returns one book's rows with derived columns and running
	// balances freshly computed. month/year of zero means the whole book.
	GetBook(ctx context.Context, book Book, month, year int) (BookView, error)

	// SaveEntry validates and upserts one row. A row without an id gets
	// one assigned.
	SaveEntry(ctx context.Context, book Book, payload json.RawMessage) (Entry, error)

	DeleteEntry(ctx context.Context, book Book, id string) error

	GetOpeningBalance(ctx context.Context, book Book, period string) (OpeningBalance, error)
	SetOpeningBalance(ctx context.Context, book Book, req UpsertOpeningBalanceRequest) (OpeningBalance, error)
}
