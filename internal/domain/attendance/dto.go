package attendance

import (
	"github.com/taphoa39/books-backend-go/internal/pkg/validator"
)

type SaveRecordRequest struct {
	ID         string `json:"id,omitempty"`
	Date       string `json:"date"`
	WorkerID   string `json:"workerId"`
	WorkerName string `json:"workerName"`
	StartTime  string `json:"startTime"`
	EndTime    string `json:"endTime"`
	Notes      string `json:"notes,omitempty"`
}

func (r SaveRecordRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "is required"})
	} else if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if validator.IsEmpty(r.WorkerID) {
		errs = append(errs, validator.ValidationError{Field: "workerId", Message: "is required"})
	}
	if validator.IsEmpty(r.WorkerName) {
		errs = append(errs, validator.ValidationError{Field: "workerName", Message: "is required"})
	}
	if !validator.IsValidTimeOfDay(r.StartTime) {
		errs = append(errs, validator.ValidationError{Field: "startTime", Message: "must be HH:MM"})
	}
	if !validator.IsValidTimeOfDay(r.EndTime) {
		errs = append(errs, validator.ValidationError{Field: "endTime", Message: "must be HH:MM"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type BatchSaveRequest struct {
	Records []SaveRecordRequest `json:"records"`
}

func (r BatchSaveRequest) Validate() error {
	var errs validator.ValidationErrors
	if len(r.Records) == 0 {
		errs = append(errs, validator.ValidationError{Field: "records", Message: "must not be empty"})
		return errs
	}
	for i, rec := range r.Records {
		if err := rec.Validate(); err != nil {
			if ves, ok := err.(validator.ValidationErrors); ok {
				for _, ve := range ves {
					errs = append(errs, validator.ValidationError{
						Field:   "records[" + validator.Itoa(i) + "]." + ve.Field,
						Message: ve.Message,
					})
				}
			}
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RecordResponse struct {
	ID         string  `json:"id"`
	Date       string  `json:"date"`
	WorkerID   string  `json:"workerId"`
	WorkerName string  `json:"workerName"`
	StartTime  string  `json:"startTime"`
	EndTime    string  `json:"endTime"`
	TotalHours float64 `json:"totalHours"`
	Notes      string  `json:"notes,omitempty"`
}

func ToResponse(r Record) RecordResponse {
	return RecordResponse{
		ID:         r.ID,
		Date:       r.Date,
		WorkerID:   r.WorkerID,
		WorkerName: r.WorkerName,
		StartTime:  r.StartTime,
		EndTime:    r.EndTime,
		TotalHours: r.TotalHours,
		Notes:      r.Notes,
	}
}

// Filter narrows attendance queries; zero values mean unbounded.
type Filter struct {
	From     string // YYYY-MM-DD inclusive
	To       string // YYYY-MM-DD inclusive
	WorkerID string
}
