package http

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/taphoa39/books-backend-go/internal/domain/ledger"
	"github.com/taphoa39/books-backend-go/internal/handler/http/response"
)

type LedgerHandler interface {
	GetBook(w http.ResponseWriter, r *http.Request)
	SaveEntry(w http.ResponseWriter, r *http.Request)
	DeleteEntry(w http.ResponseWriter, r *http.Request)
	GetOpeningBalance(w http.ResponseWriter, r *http.Request)
	SetOpeningBalance(w http.ResponseWriter, r *http.Request)
}

type LedgerHandlerImpl struct {
	ledgerService ledger.Service
}

// GetBook implements LedgerHandler.
func (h *LedgerHandlerImpl) GetBook(w http.ResponseWriter, r *http.Request) {
	book := ledger.Book(chi.URLParam(r, "book"))

	month, ok := intQuery(r, "month")
	if !ok {
		response.BadRequest(w, "month must be a number between 1 and 12", nil)
		return
	}
	year, ok := intQuery(r, "year")
	if !ok {
		response.BadRequest(w, "year must be a number", nil)
		return
	}

	view, err := h.ledgerService.GetBook(r.Context(), book, month, year)
	if err != nil {
		slog.Error("Get ledger book service error", "error", err, "book", book)
		response.HandleError(w, err)
		return
	}

	response.Success(w, view)
}

// SaveEntry implements LedgerHandler.
func (h *LedgerHandlerImpl) SaveEntry(w http.ResponseWriter, r *http.Request) {
	book := ledger.Book(chi.URLParam(r, "book"))

	payload, err := io.ReadAll(r.Body)
	if err != nil || len(payload) == 0 || !json.Valid(payload) {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// PUT routes carry the id in the path; fold it into the payload so
	// the update targets the addressed row.
	if id := chi.URLParam(r, "id"); id != "" {
		payload, err = withEntryID(payload, id)
		if err != nil {
			response.BadRequest(w, "Invalid request format", nil)
			return
		}
	}

	entry, err := h.ledgerService.SaveEntry(r.Context(), book, payload)
	if err != nil {
		slog.Error("Save ledger entry service error", "error", err, "book", book)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Ledger entry saved successfully", entry)
}

// DeleteEntry implements LedgerHandler.
func (h *LedgerHandlerImpl) DeleteEntry(w http.ResponseWriter, r *http.Request) {
	book := ledger.Book(chi.URLParam(r, "book"))
	id := chi.URLParam(r, "id")

	if err := h.ledgerService.DeleteEntry(r.Context(), book, id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Ledger entry deleted", nil)
}

// GetOpeningBalance implements LedgerHandler.
func (h *LedgerHandlerImpl) GetOpeningBalance(w http.ResponseWriter, r *http.Request) {
	book := ledger.Book(chi.URLParam(r, "book"))
	period := r.URL.Query().Get("period")

	balance, err := h.ledgerService.GetOpeningBalance(r.Context(), book, period)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, balance)
}

// SetOpeningBalance implements LedgerHandler.
func (h *LedgerHandlerImpl) SetOpeningBalance(w http.ResponseWriter, r *http.Request) {
	book := ledger.Book(chi.URLParam(r, "book"))

	var req ledger.UpsertOpeningBalanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Set opening balance decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	balance, err := h.ledgerService.SetOpeningBalance(r.Context(), book, req)
	if err != nil {
		slog.Error("Set opening balance service error", "error", err, "book", book)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Opening balance saved", balance)
}

// withEntryID overwrites the id field of a raw JSON object. json.Number
// keeps money values byte-identical through the round trip.
func withEntryID(payload []byte, id string) ([]byte, error) {
	var fields map[string]interface{}
	dec := json.NewDecoder(bytes.NewReader(payload))
	dec.UseNumber()
	if err := dec.Decode(&fields); err != nil {
		return nil, err
	}
	fields["id"] = id
	return json.Marshal(fields)
}

// intQuery parses an optional numeric query parameter. Absent means zero.
func intQuery(r *http.Request, name string) (int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return 0, false
	}
	return v, true
}

func NewLedgerHandler(ledgerService ledger.Service) LedgerHandler {
	return &LedgerHandlerImpl{
		ledgerService: ledgerService,
	}
}
