package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/taphoa39/books-backend-go/internal/domain/payroll"
	"github.com/taphoa39/books-backend-go/internal/handler/http/response"
)

type PayrollHandler interface {
	Save(w http.ResponseWriter, r *http.Request)
	SaveBatch(w http.ResponseWriter, r *http.Request)
	ListByPeriod(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	Reconcile(w http.ResponseWriter, r *http.Request)
	Summary(w http.ResponseWriter, r *http.Request)
	Payslip(w http.ResponseWriter, r *http.Request)
}

type PayrollHandlerImpl struct {
	payrollService payroll.Service
}

// Save implements PayrollHandler.
func (h *PayrollHandlerImpl) Save(w http.ResponseWriter, r *http.Request) {
	var req payroll.SaveRecordRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Save payroll decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	rec, err := h.payrollService.Save(r.Context(), req)
	if err != nil {
		slog.Error("Save payroll service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll record saved successfully", rec)
}

// SaveBatch implements PayrollHandler.
func (h *PayrollHandlerImpl) SaveBatch(w http.ResponseWriter, r *http.Request) {
	var req payroll.BatchSaveRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Batch save payroll decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	recs, err := h.payrollService.SaveBatch(r.Context(), req)
	if err != nil {
		slog.Error("Batch save payroll service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll records saved successfully", recs)
}

// ListByPeriod implements PayrollHandler.
func (h *PayrollHandlerImpl) ListByPeriod(w http.ResponseWriter, r *http.Request) {
	period := r.URL.Query().Get("period")

	recs, err := h.payrollService.ListByPeriod(r.Context(), period)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, recs)
}

// Delete implements PayrollHandler.
func (h *PayrollHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.payrollService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll record deleted", nil)
}

// Reconcile implements PayrollHandler.
func (h *PayrollHandlerImpl) Reconcile(w http.ResponseWriter, r *http.Request) {
	period := r.URL.Query().Get("period")
	if period == "" {
		var req struct {
			Period string `json:"period"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			slog.Error("Reconcile payroll decode error", "error", err)
			response.BadRequest(w, "Invalid request format", nil)
			return
		}
		period = req.Period
	}

	recs, err := h.payrollService.ReconcilePeriod(r.Context(), period)
	if err != nil {
		slog.Error("Reconcile payroll service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll reconciled from attendance", recs)
}

// Summary implements PayrollHandler.
func (h *PayrollHandlerImpl) Summary(w http.ResponseWriter, r *http.Request) {
	period := r.URL.Query().Get("period")

	summary, err := h.payrollService.Summary(r.Context(), period)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, summary)
}

// Payslip implements PayrollHandler.
func (h *PayrollHandlerImpl) Payslip(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	pdf, err := h.payrollService.Payslip(r.Context(), id)
	if err != nil {
		slog.Error("Payslip service error", "error", err, "id", id)
		response.HandleError(w, err)
		return
	}

	response.PDF(w, fmt.Sprintf("payslip-%s.pdf", id), pdf)
}

func NewPayrollHandler(payrollService payroll.Service) PayrollHandler {
	return &PayrollHandlerImpl{
		payrollService: payrollService,
	}
}
