package attendance

import (
	"context"
	"fmt"

	"github.com/taphoa39/books-backend-go/internal/domain/attendance"
)

type AttendanceServiceImpl struct {
	attendanceRepo attendance.Repository
}

func NewAttendanceService(attendanceRepo attendance.Repository) attendance.Service {
	return &AttendanceServiceImpl{attendanceRepo: attendanceRepo}
}

// Save implements attendance.Service.
func (s *AttendanceServiceImpl) Save(ctx context.Context, req attendance.SaveRecordRequest) (attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordResponse{}, err
	}

	rec, err := s.toRecord(req)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	saved, err := s.attendanceRepo.Put(ctx, rec)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	return attendance.ToResponse(saved), nil
}

// SaveBatch implements attendance.Service.
func (s *AttendanceServiceImpl) SaveBatch(ctx context.Context, req attendance.BatchSaveRequest) ([]attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	responses := make([]attendance.RecordResponse, 0, len(req.Records))
	for _, r := range req.Records {
		rec, err := s.toRecord(r)
		if err != nil {
			return nil, err
		}
		saved, err := s.attendanceRepo.Put(ctx, rec)
		if err != nil {
			return nil, err
		}
		responses = append(responses, attendance.ToResponse(saved))
	}

	return responses, nil
}

// List implements attendance.Service.
func (s *AttendanceServiceImpl) List(ctx context.Context, filter attendance.Filter) ([]attendance.RecordResponse, error) {
	records, err := s.attendanceRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]attendance.RecordResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, attendance.ToResponse(rec))
	}
	return responses, nil
}

// Delete implements attendance.Service.
func (s *AttendanceServiceImpl) Delete(ctx context.Context, id string) error {
	return s.attendanceRepo.Delete(ctx, id)
}

// toRecord builds the record with TotalHours recomputed and the
// date_workerId id enforced regardless of what the client sent.
func (s *AttendanceServiceImpl) toRecord(req attendance.SaveRecordRequest) (attendance.Record, error) {
	hours, err := attendance.HoursBetween(req.StartTime, req.EndTime)
	if err != nil {
		return attendance.Record{}, fmt.Errorf("failed to compute hours: %w", err)
	}

	rec := attendance.Record{
		Date:       req.Date,
		WorkerID:   req.WorkerID,
		WorkerName: req.WorkerName,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		TotalHours: hours,
		Notes:      req.Notes,
	}
	rec.ID = rec.Key()
	return rec, nil
}
