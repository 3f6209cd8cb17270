package schedule

import "context"

// Repository defines data access for work schedules, keyed by week start
// date (one row per week, upserted whole).
type Repository interface {
	// Upsert stores a week's schedule, replacing any existing week with the
	// same start date.
	Upsert(ctx context.Context, ws WorkSchedule) (WorkSchedule, error)

	GetByWeekStart(ctx context.Context, weekStartDate string) (WorkSchedule, error)

	// ListRange returns schedules whose week overlaps [from, to].
	ListRange(ctx context.Context, from, to string) ([]WorkSchedule, error)

	Delete(ctx context.Context, weekStartDate string) error
}
