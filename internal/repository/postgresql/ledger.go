package postgresql

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/taphoa39/books-backend-go/internal/domain/ledger"
	"github.com/taphoa39/books-backend-go/internal/pkg/database"
)

// ledgerRepository keeps all ten books in one table. Rows carry the typed
// payload as JSONB with the entry date lifted into its own column for
// ordering and period filters; the books differ only in payload shape, so
// a table per book would buy nothing.
type ledgerRepository struct {
	db *database.DB
}

func NewLedgerRepository(db *database.DB) ledger.Repository {
	return &ledgerRepository{db: db}
}

// ListEntries implements ledger.Repository.
func (r *ledgerRepository) ListEntries(ctx context.Context, book ledger.Book, month, year int) ([]ledger.EntryRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, book, entry_date, data, updated_at
		FROM ledger_entries
		WHERE book = $1
	`
	args := []interface{}{string(book)}

	if year != 0 {
		args = append(args, year)
		query += fmt.Sprintf(" AND EXTRACT(YEAR FROM entry_date) = $%d", len(args))
	}
	if month != 0 {
		args = append(args, month)
		query += fmt.Sprintf(" AND EXTRACT(MONTH FROM entry_date) = $%d", len(args))
	}
	query += " ORDER BY entry_date, id"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s entries: %w", book, err)
	}
	defer rows.Close()

	var records []ledger.EntryRecord
	for rows.Next() {
		var rec ledger.EntryRecord
		if err := rows.Scan(&rec.ID, &rec.Book, &rec.EntryDate, &rec.Data, &rec.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan %s entry: %w", book, err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate %s entries: %w", book, err)
	}

	return records, nil
}

// PutEntry implements ledger.Repository.
func (r *ledgerRepository) PutEntry(ctx context.Context, rec ledger.EntryRecord) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO ledger_entries (id, book, entry_date, data)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (book, id) DO UPDATE SET
			entry_date = EXCLUDED.entry_date,
			data = EXCLUDED.data,
			updated_at = NOW()
	`

	if _, err := q.Exec(ctx, query, rec.ID, string(rec.Book), rec.EntryDate, rec.Data); err != nil {
		return fmt.Errorf("failed to save %s entry %s: %w", rec.Book, rec.ID, err)
	}

	return nil
}

// DeleteEntry implements ledger.Repository.
func (r *ledgerRepository) DeleteEntry(ctx context.Context, book ledger.Book, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM ledger_entries WHERE book = $1 AND id = $2`, string(book), id)
	if err != nil {
		return fmt.Errorf("failed to delete %s entry %s: %w", book, id, err)
	}
	if tag.RowsAffected() == 0 {
		return ledger.ErrEntryNotFound
	}

	return nil
}

// GetOpeningBalance implements ledger.Repository.
func (r *ledgerRepository) GetOpeningBalance(ctx context.Context, book ledger.Book, period string) (ledger.OpeningBalance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT book, period, so_du_dau_ky, payables
		FROM ledger_opening_balances
		WHERE book = $1 AND period = $2
	`

	var ob ledger.OpeningBalance
	var payables []byte
	err := q.QueryRow(ctx, query, string(book), period).Scan(&ob.Book, &ob.Period, &ob.SoDuDauKy, &payables)
	if err != nil {
		if err == pgx.ErrNoRows {
			return ledger.OpeningBalance{}, ledger.ErrOpeningBalanceNotFound
		}
		return ledger.OpeningBalance{}, fmt.Errorf("failed to get opening balance for %s %s: %w", book, period, err)
	}

	if len(payables) > 0 {
		ob.Payables = &ledger.PayablesOpening{}
		if err := json.Unmarshal(payables, ob.Payables); err != nil {
			return ledger.OpeningBalance{}, fmt.Errorf("failed to decode payables opening balance: %w", err)
		}
	}

	return ob, nil
}

// UpsertOpeningBalance implements ledger.Repository.
func (r *ledgerRepository) UpsertOpeningBalance(ctx context.Context, ob ledger.OpeningBalance) error {
	q := GetQuerier(ctx, r.db)

	var payables []byte
	if ob.Payables != nil {
		var err error
		payables, err = json.Marshal(ob.Payables)
		if err != nil {
			return fmt.Errorf("failed to encode payables opening balance: %w", err)
		}
	}

	query := `
		INSERT INTO ledger_opening_balances (book, period, so_du_dau_ky, payables)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (book, period) DO UPDATE SET
			so_du_dau_ky = EXCLUDED.so_du_dau_ky,
			payables = EXCLUDED.payables,
			updated_at = NOW()
	`

	if _, err := q.Exec(ctx, query, string(ob.Book), ob.Period, ob.SoDuDauKy, payables); err != nil {
		return fmt.Errorf("failed to save opening balance for %s %s: %w", ob.Book, ob.Period, err)
	}

	return nil
}
