package schedule

import "context"

type Service interface {
	Save(ctx context.Context, req SaveScheduleRequest) (ScheduleResponse, error)
	GetWeek(ctx context.Context, weekStartDate string) (ScheduleResponse, error)
	ListRange(ctx context.Context, from, to string) ([]ScheduleResponse, error)
	Delete(ctx context.Context, weekStartDate string) error

	// GenerateAttendance turns the schedules overlapping [from, to] into
	// unsaved attendance drafts, skipping worker-days already recorded.
	GenerateAttendance(ctx context.Context, from, to string) ([]DraftResponse, error)
}
