package schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/taphoa39/books-backend-go/internal/domain/attendance"
	"github.com/taphoa39/books-backend-go/internal/domain/schedule"
)

type scheduleServiceImpl struct {
	workScheduleRepo schedule.Repository
	attendanceRepo   attendance.Repository
}

func NewScheduleService(workScheduleRepo schedule.Repository, attendanceRepo attendance.Repository) schedule.Service {
	return &scheduleServiceImpl{
		workScheduleRepo: workScheduleRepo,
		attendanceRepo:   attendanceRepo,
	}
}

// Save implements schedule.Service.
func (s *scheduleServiceImpl) Save(ctx context.Context, req schedule.SaveScheduleRequest) (schedule.ScheduleResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.ScheduleResponse{}, err
	}

	ws := schedule.WorkSchedule{
		ID:            uuid.NewString(),
		WeekNumber:    req.WeekNumber,
		WeekStartDate: req.WeekStartDate,
		WeekEndDate:   req.WeekEndDate,
		Days:          req.Days,
	}
	if ws.WeekEndDate == "" {
		end, err := weekEnd(ws.WeekStartDate)
		if err != nil {
			return schedule.ScheduleResponse{}, err
		}
		ws.WeekEndDate = end
	}
	if ws.Days == nil {
		ws.Days = map[string]schedule.DaySchedule{}
	}

	saved, err := s.workScheduleRepo.Upsert(ctx, ws)
	if err != nil {
		return schedule.ScheduleResponse{}, err
	}

	return schedule.ToResponse(saved), nil
}

// GetWeek implements schedule.Service.
func (s *scheduleServiceImpl) GetWeek(ctx context.Context, weekStartDate string) (schedule.ScheduleResponse, error) {
	ws, err := s.workScheduleRepo.GetByWeekStart(ctx, weekStartDate)
	if err != nil {
		return schedule.ScheduleResponse{}, err
	}
	return schedule.ToResponse(ws), nil
}

// ListRange implements schedule.Service.
func (s *scheduleServiceImpl) ListRange(ctx context.Context, from, to string) ([]schedule.ScheduleResponse, error) {
	schedules, err := s.workScheduleRepo.ListRange(ctx, from, to)
	if err != nil {
		return nil, err
	}

	responses := make([]schedule.ScheduleResponse, 0, len(schedules))
	for _, ws := range schedules {
		responses = append(responses, schedule.ToResponse(ws))
	}
	return responses, nil
}

// Delete implements schedule.Service.
func (s *scheduleServiceImpl) Delete(ctx context.Context, weekStartDate string) error {
	return s.workScheduleRepo.Delete(ctx, weekStartDate)
}

// GenerateAttendance implements schedule.Service.
func (s *scheduleServiceImpl) GenerateAttendance(ctx context.Context, from, to string) ([]schedule.DraftResponse, error) {
	schedules, err := s.workScheduleRepo.ListRange(ctx, from, to)
	if err != nil {
		return nil, err
	}

	existingKeys, err := s.attendanceRepo.ExistingKeys(ctx, from, to)
	if err != nil {
		return nil, err
	}

	drafts := schedule.GenerateAttendance(schedules, existingKeys)

	responses := make([]schedule.DraftResponse, 0, len(drafts))
	for _, d := range drafts {
		responses = append(responses, schedule.ToDraftResponse(d))
	}
	return responses, nil
}

func weekEnd(weekStartDate string) (string, error) {
	start, err := time.Parse("2006-01-02", weekStartDate)
	if err != nil {
		return "", fmt.Errorf("invalid week start date %q: %w", weekStartDate, err)
	}
	return start.AddDate(0, 0, 6).Format("2006-01-02"), nil
}
