package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/taphoa39/books-backend-go/internal/domain/ledger"
)

type ledgerServiceImpl struct {
	ledgerRepo ledger.Repository
}

func NewLedgerService(ledgerRepo ledger.Repository) ledger.Service {
	return &ledgerServiceImpl{ledgerRepo: ledgerRepo}
}

// GetBook implements ledger.Service. Balances are recomputed from the
// stored rows on every read; the stored balance columns are never trusted.
func (s *ledgerServiceImpl) GetBook(ctx context.Context, book ledger.Book, month, year int) (ledger.BookView, error) {
	if !book.IsValid() {
		return ledger.BookView{}, ledger.ErrUnknownBook
	}

	records, err := s.ledgerRepo.ListEntries(ctx, book, month, year)
	if err != nil {
		return ledger.BookView{}, err
	}

	view := ledger.BookView{Book: book}

	switch book {
	case ledger.BookLuongBaoHiem:
		entries, err := decodeAll[ledger.LuongBaoHiemEntry](records)
		if err != nil {
			return ledger.BookView{}, err
		}
		opening := ledger.PayablesOpening{}
		if ob, err := s.openingFor(ctx, book, month, year); err == nil && ob.Payables != nil {
			opening = *ob.Payables
		} else if err != nil && !errors.Is(err, ledger.ErrOpeningBalanceNotFound) {
			return ledger.BookView{}, err
		}
		ledger.SortByDate(entries)
		closing := ledger.ComputePayablesBalance(entries, opening)
		view.Entries = entries
		view.OpeningBalance = opening
		view.ClosingBalance = closing

	case ledger.BookNghiaVuThue, ledger.BookCongNo, ledger.BookQuyTienMat, ledger.BookTienNganHang:
		view, err = buildFlowView(ctx, s, book, month, year, records)
		if err != nil {
			return ledger.BookView{}, err
		}

	default:
		entries := make([]ledger.Entry, 0, len(records))
		for _, rec := range records {
			e, err := ledger.DecodeEntry(book, rec.Data)
			if err != nil {
				return ledger.BookView{}, fmt.Errorf("failed to decode %s entry %s: %w", book, rec.ID, err)
			}
			e.Derive()
			entries = append(entries, e)
		}
		ledger.SortByDate(entries)
		view.Entries = entries
	}

	return view, nil
}

// SaveEntry implements ledger.Service.
func (s *ledgerServiceImpl) SaveEntry(ctx context.Context, book ledger.Book, payload json.RawMessage) (ledger.Entry, error) {
	if !book.IsValid() {
		return nil, ledger.ErrUnknownBook
	}

	e, err := ledger.DecodeEntry(book, payload)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s entry: %w", book, err)
	}
	if err := ledger.ValidateEntry(e); err != nil {
		return nil, err
	}

	if e.EntryID() == "" {
		e.SetEntryID(uuid.NewString())
	}
	e.Derive()

	entryDate, err := time.Parse("2006-01-02", e.EntryDate())
	if err != nil {
		return nil, fmt.Errorf("invalid entry date %q: %w", e.EntryDate(), err)
	}

	data, err := json.Marshal(e)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s entry: %w", book, err)
	}

	if err := s.ledgerRepo.PutEntry(ctx, ledger.EntryRecord{
		ID:        e.EntryID(),
		Book:      book,
		EntryDate: entryDate,
		Data:      data,
	}); err != nil {
		return nil, err
	}

	return e, nil
}

// DeleteEntry implements ledger.Service.
func (s *ledgerServiceImpl) DeleteEntry(ctx context.Context, book ledger.Book, id string) error {
	if !book.IsValid() {
		return ledger.ErrUnknownBook
	}
	return s.ledgerRepo.DeleteEntry(ctx, book, id)
}

// GetOpeningBalance implements ledger.Service.
func (s *ledgerServiceImpl) GetOpeningBalance(ctx context.Context, book ledger.Book, period string) (ledger.OpeningBalance, error) {
	if !book.IsValid() {
		return ledger.OpeningBalance{}, ledger.ErrUnknownBook
	}
	return s.ledgerRepo.GetOpeningBalance(ctx, book, period)
}

// SetOpeningBalance implements ledger.Service.
func (s *ledgerServiceImpl) SetOpeningBalance(ctx context.Context, book ledger.Book, req ledger.UpsertOpeningBalanceRequest) (ledger.OpeningBalance, error) {
	if !book.IsValid() {
		return ledger.OpeningBalance{}, ledger.ErrUnknownBook
	}
	if err := req.Validate(); err != nil {
		return ledger.OpeningBalance{}, err
	}

	ob := ledger.OpeningBalance{
		Book:     book,
		Period:   req.Period,
		Payables: req.Payables,
	}
	if req.SoDuDauKy != "" {
		v, err := decimal.NewFromString(req.SoDuDauKy.String())
		if err != nil {
			return ledger.OpeningBalance{}, fmt.Errorf("invalid soDuDauKy: %w", err)
		}
		ob.SoDuDauKy = v
	}

	if err := s.ledgerRepo.UpsertOpeningBalance(ctx, ob); err != nil {
		return ledger.OpeningBalance{}, err
	}

	return ob, nil
}

// openingFor looks up the opening balance for a month/year scoped read.
// Whole-book reads carry no period, so they seed from zero.
func (s *ledgerServiceImpl) openingFor(ctx context.Context, book ledger.Book, month, year int) (ledger.OpeningBalance, error) {
	if month == 0 || year == 0 {
		return ledger.OpeningBalance{}, ledger.ErrOpeningBalanceNotFound
	}
	return s.ledgerRepo.GetOpeningBalance(ctx, book, fmt.Sprintf("%04d-%02d", year, month))
}

// decodeAll unmarshals stored rows into their concrete entry type and
// recomputes each row's derived columns.
func decodeAll[T any, PT interface {
	*T
	ledger.Entry
}](records []ledger.EntryRecord) ([]PT, error) {
	entries := make([]PT, 0, len(records))
	for _, rec := range records {
		e := PT(new(T))
		if err := json.Unmarshal(rec.Data, e); err != nil {
			return nil, fmt.Errorf("failed to decode %s entry %s: %w", rec.Book, rec.ID, err)
		}
		e.Derive()
		entries = append(entries, e)
	}
	return entries, nil
}

// buildFlowView assembles the view of a single-balance-column book.
func buildFlowView(ctx context.Context, s *ledgerServiceImpl, book ledger.Book, month, year int, records []ledger.EntryRecord) (ledger.BookView, error) {
	opening := decimal.Zero
	if ob, err := s.openingFor(ctx, book, month, year); err == nil {
		opening = ob.SoDuDauKy
	} else if !errors.Is(err, ledger.ErrOpeningBalanceNotFound) {
		return ledger.BookView{}, err
	}

	view := ledger.BookView{Book: book, OpeningBalance: opening}

	switch book {
	case ledger.BookNghiaVuThue:
		entries, err := decodeAll[ledger.NghiaVuThueEntry](records)
		if err != nil {
			return ledger.BookView{}, err
		}
		ledger.SortByDate(entries)
		view.ClosingBalance = ledger.ComputeRunningBalance(entries, opening)
		view.Entries = entries
	case ledger.BookCongNo:
		entries, err := decodeAll[ledger.CongNoEntry](records)
		if err != nil {
			return ledger.BookView{}, err
		}
		ledger.SortByDate(entries)
		view.ClosingBalance = ledger.ComputeRunningBalance(entries, opening)
		view.Entries = entries
	case ledger.BookQuyTienMat:
		entries, err := decodeAll[ledger.QuyTienMatEntry](records)
		if err != nil {
			return ledger.BookView{}, err
		}
		ledger.SortByDate(entries)
		view.ClosingBalance = ledger.ComputeRunningBalance(entries, opening)
		view.Entries = entries
	case ledger.BookTienNganHang:
		entries, err := decodeAll[ledger.TienNganHangEntry](records)
		if err != nil {
			return ledger.BookView{}, err
		}
		ledger.SortByDate(entries)
		view.ClosingBalance = ledger.ComputeRunningBalance(entries, opening)
		view.Entries = entries
	}

	return view, nil
}
