package schedule

import (
	"github.com/taphoa39/books-backend-go/internal/pkg/validator"
)

type SaveScheduleRequest struct {
	WeekNumber    int                    `json:"weekNumber"`
	WeekStartDate string                 `json:"weekStartDate"`
	WeekEndDate   string                 `json:"weekEndDate,omitempty"`
	Days          map[string]DaySchedule `json:"days"`
}

func (r SaveScheduleRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.WeekStartDate) {
		errs = append(errs, validator.ValidationError{Field: "weekStartDate", Message: "is required"})
	} else if _, ok := validator.IsValidDate(r.WeekStartDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "weekStartDate", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	for dayName, day := range r.Days {
		if day.Date != "" {
			if _, ok := validator.IsValidDate(day.Date); !ok {
				errs = append(errs, validator.ValidationError{Field: "days." + dayName + ".date", Message: "must be a valid date (YYYY-MM-DD)"})
			}
		}
		for shift, cell := range day.Cells() {
			if cell == nil {
				continue
			}
			if !validator.IsValidTimeOfDay(cell.StartTime) || !validator.IsValidTimeOfDay(cell.EndTime) {
				errs = append(errs, validator.ValidationError{Field: "days." + dayName + "." + shift, Message: "shift times must be HH:MM"})
			}
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ScheduleResponse struct {
	ID            string                 `json:"id"`
	WeekNumber    int                    `json:"weekNumber"`
	WeekStartDate string                 `json:"weekStartDate"`
	WeekEndDate   string                 `json:"weekEndDate,omitempty"`
	Days          map[string]DaySchedule `json:"days"`
}

func ToResponse(ws WorkSchedule) ScheduleResponse {
	return ScheduleResponse{
		ID:            ws.ID,
		WeekNumber:    ws.WeekNumber,
		WeekStartDate: ws.WeekStartDate,
		WeekEndDate:   ws.WeekEndDate,
		Days:          ws.Days,
	}
}

type DraftResponse struct {
	ID         string  `json:"id"`
	Date       string  `json:"date"`
	WorkerID   string  `json:"workerId"`
	WorkerName string  `json:"workerName"`
	StartTime  string  `json:"startTime"`
	EndTime    string  `json:"endTime"`
	TotalHours float64 `json:"totalHours"`
	IsSaved    bool    `json:"isSaved"`
	IsNew      bool    `json:"isNew"`
}

func ToDraftResponse(d Draft) DraftResponse {
	return DraftResponse{
		ID:         d.ID,
		Date:       d.Date,
		WorkerID:   d.WorkerID,
		WorkerName: d.WorkerName,
		StartTime:  d.StartTime,
		EndTime:    d.EndTime,
		TotalHours: d.TotalHours,
		IsSaved:    d.IsSaved,
		IsNew:      d.IsNew,
	}
}
