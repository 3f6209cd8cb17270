package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/taphoa39/books-backend-go/internal/domain/schedule"
	"github.com/taphoa39/books-backend-go/internal/handler/http/response"
)

type ScheduleHandler interface {
	Save(w http.ResponseWriter, r *http.Request)
	GetWeek(w http.ResponseWriter, r *http.Request)
	ListRange(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	GenerateAttendance(w http.ResponseWriter, r *http.Request)
}

type ScheduleHandlerImpl struct {
	scheduleService schedule.Service
}

// Save implements ScheduleHandler.
func (h *ScheduleHandlerImpl) Save(w http.ResponseWriter, r *http.Request) {
	var req schedule.SaveScheduleRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Save schedule decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	ws, err := h.scheduleService.Save(r.Context(), req)
	if err != nil {
		slog.Error("Save schedule service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Work schedule saved successfully", ws)
}

// GetWeek implements ScheduleHandler.
func (h *ScheduleHandlerImpl) GetWeek(w http.ResponseWriter, r *http.Request) {
	weekStartDate := chi.URLParam(r, "weekStartDate")

	ws, err := h.scheduleService.GetWeek(r.Context(), weekStartDate)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, ws)
}

// ListRange implements ScheduleHandler.
func (h *ScheduleHandlerImpl) ListRange(w http.ResponseWriter, r *http.Request) {
	from := r.URL.Query().Get("from")
	to := r.URL.Query().Get("to")
	if from == "" || to == "" {
		response.BadRequest(w, "from and to query parameters are required", nil)
		return
	}

	schedules, err := h.scheduleService.ListRange(r.Context(), from, to)
	if err != nil {
		slog.Error("List schedules service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, schedules)
}

// Delete implements ScheduleHandler.
func (h *ScheduleHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	weekStartDate := chi.URLParam(r, "weekStartDate")

	if err := h.scheduleService.Delete(r.Context(), weekStartDate); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Work schedule deleted", nil)
}

// GenerateAttendance implements ScheduleHandler.
func (h *ScheduleHandlerImpl) GenerateAttendance(w http.ResponseWriter, r *http.Request) {
	from := r.URL.Query().Get("from")
	to := r.URL.Query().Get("to")
	if from == "" || to == "" {
		response.BadRequest(w, "from and to query parameters are required", nil)
		return
	}

	drafts, err := h.scheduleService.GenerateAttendance(r.Context(), from, to)
	if err != nil {
		slog.Error("Generate attendance service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, drafts)
}

func NewScheduleHandler(scheduleService schedule.Service) ScheduleHandler {
	return &ScheduleHandlerImpl{
		scheduleService: scheduleService,
	}
}
