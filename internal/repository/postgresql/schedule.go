package postgresql

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/taphoa39/books-backend-go/internal/domain/schedule"
	"github.com/taphoa39/books-backend-go/internal/pkg/database"
)

// workScheduleRepositoryImpl stores one row per week. The day grid is a
// JSONB document; weeks are always read and written whole, so there is
// nothing to gain from normalizing shifts into their own table.
type workScheduleRepositoryImpl struct {
	db *database.DB
}

func NewWorkScheduleRepository(db *database.DB) schedule.Repository {
	return &workScheduleRepositoryImpl{db: db}
}

func scanWorkSchedule(row pgx.Row) (schedule.WorkSchedule, error) {
	var ws schedule.WorkSchedule
	var days []byte
	err := row.Scan(&ws.ID, &ws.WeekNumber, &ws.WeekStartDate, &ws.WeekEndDate, &days, &ws.UpdatedAt)
	if err != nil {
		return schedule.WorkSchedule{}, err
	}
	if err := json.Unmarshal(days, &ws.Days); err != nil {
		return schedule.WorkSchedule{}, fmt.Errorf("failed to decode schedule days: %w", err)
	}
	return ws, nil
}

const workScheduleColumns = `
	id, week_number, to_char(week_start_date, 'YYYY-MM-DD'),
	to_char(week_end_date, 'YYYY-MM-DD'), days, updated_at
`

// Upsert implements schedule.Repository.
func (r *workScheduleRepositoryImpl) Upsert(ctx context.Context, ws schedule.WorkSchedule) (schedule.WorkSchedule, error) {
	q := GetQuerier(ctx, r.db)

	days, err := json.Marshal(ws.Days)
	if err != nil {
		return schedule.WorkSchedule{}, fmt.Errorf("failed to encode schedule days: %w", err)
	}

	query := `
		INSERT INTO work_schedules (id, week_number, week_start_date, week_end_date, days)
		VALUES ($1, $2, $3::date, $4::date, $5)
		ON CONFLICT (week_start_date) DO UPDATE SET
			id = EXCLUDED.id,
			week_number = EXCLUDED.week_number,
			week_end_date = EXCLUDED.week_end_date,
			days = EXCLUDED.days,
			updated_at = NOW()
		RETURNING ` + workScheduleColumns

	saved, err := scanWorkSchedule(q.QueryRow(ctx, query,
		ws.ID, ws.WeekNumber, ws.WeekStartDate, ws.WeekEndDate, days,
	))
	if err != nil {
		return schedule.WorkSchedule{}, fmt.Errorf("failed to save work schedule: %w", err)
	}

	return saved, nil
}

// GetByWeekStart implements schedule.Repository.
func (r *workScheduleRepositoryImpl) GetByWeekStart(ctx context.Context, weekStartDate string) (schedule.WorkSchedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + workScheduleColumns + ` FROM work_schedules WHERE week_start_date = $1::date`

	ws, err := scanWorkSchedule(q.QueryRow(ctx, query, weekStartDate))
	if err != nil {
		if err == pgx.ErrNoRows {
			return schedule.WorkSchedule{}, schedule.ErrScheduleNotFound
		}
		return schedule.WorkSchedule{}, fmt.Errorf("failed to get work schedule for week %s: %w", weekStartDate, err)
	}

	return ws, nil
}

// ListRange implements schedule.Repository.
func (r *workScheduleRepositoryImpl) ListRange(ctx context.Context, from, to string) ([]schedule.WorkSchedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + workScheduleColumns + `
		FROM work_schedules
		WHERE week_end_date >= $1::date AND week_start_date <= $2::date
		ORDER BY week_start_date
	`

	rows, err := q.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list work schedules: %w", err)
	}
	defer rows.Close()

	var schedules []schedule.WorkSchedule
	for rows.Next() {
		ws, err := scanWorkSchedule(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan work schedule: %w", err)
		}
		schedules = append(schedules, ws)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate work schedules: %w", err)
	}

	return schedules, nil
}

// Delete implements schedule.Repository.
func (r *workScheduleRepositoryImpl) Delete(ctx context.Context, weekStartDate string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM work_schedules WHERE week_start_date = $1::date`, weekStartDate)
	if err != nil {
		return fmt.Errorf("failed to delete work schedule for week %s: %w", weekStartDate, err)
	}
	if tag.RowsAffected() == 0 {
		return schedule.ErrScheduleNotFound
	}

	return nil
}
