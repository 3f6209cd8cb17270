package attendance

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Record is one worker-day of attendance. TotalHours is derived from the
// start and end times and recomputed on every create or update.
type Record struct {
	ID         string
	Date       string // YYYY-MM-DD
	WorkerID   string
	WorkerName string
	StartTime  string // HH:MM
	EndTime    string // HH:MM
	TotalHours float64
	Notes      string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Key returns the date_workerId dedup key used when generating attendance
// from schedules.
func (r Record) Key() string {
	return r.Date + "_" + r.WorkerID
}

// Period returns the YYYY-MM accounting period the record falls in.
func (r Record) Period() string {
	if len(r.Date) >= 7 {
		return r.Date[:7]
	}
	return r.Date
}

// HoursBetween computes worked hours from HH:MM start and end times.
// Shifts that run past midnight come out negative from the raw subtraction
// and get a day added, so 22:00–06:00 is 8 hours. Result is rounded to two
// decimals.
func HoursBetween(startTime, endTime string) (float64, error) {
	start, err := parseMinutes(startTime)
	if err != nil {
		return 0, err
	}
	end, err := parseMinutes(endTime)
	if err != nil {
		return 0, err
	}

	diff := end - start
	if diff < 0 {
		diff += 24 * 60
	}
	return math.Round(float64(diff)/60*100) / 100, nil
}

func parseMinutes(t string) (int, error) {
	parts := strings.SplitN(t, ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time %q: want HH:MM", t)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("invalid hour in %q", t)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid minute in %q", t)
	}
	return h*60 + m, nil
}
