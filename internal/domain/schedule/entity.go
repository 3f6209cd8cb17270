package schedule

import "time"

// Shift names within a day.
const (
	ShiftMorning   = "morning"
	ShiftAfternoon = "afternoon"
	ShiftEvening   = "evening"
)

// Shifts in display order.
var Shifts = []string{ShiftMorning, ShiftAfternoon, ShiftEvening}

// WorkerAssignment pins one worker to a shift cell.
type WorkerAssignment struct {
	WorkerID   string `json:"workerId"`
	WorkerName string `json:"workerName"`
}

// Cell is one shift slot of one day: who works it and when.
type Cell struct {
	Workers   []WorkerAssignment `json:"workers"`
	StartTime string             `json:"startTime"`
	EndTime   string             `json:"endTime"`
}

// DaySchedule is the three shift slots of a calendar day. Unstaffed shifts
// are nil.
type DaySchedule struct {
	Date      string `json:"date"` // YYYY-MM-DD
	Morning   *Cell  `json:"morning"`
	Afternoon *Cell  `json:"afternoon"`
	Evening   *Cell  `json:"evening"`
}

// Cells returns the day's shift cells keyed by shift name.
func (d DaySchedule) Cells() map[string]*Cell {
	return map[string]*Cell{
		ShiftMorning:   d.Morning,
		ShiftAfternoon: d.Afternoon,
		ShiftEvening:   d.Evening,
	}
}

// WorkSchedule is one week of staffing, keyed by the week start date.
type WorkSchedule struct {
	ID            string
	WeekNumber    int
	WeekStartDate string // YYYY-MM-DD, Monday
	WeekEndDate   string
	Days          map[string]DaySchedule // keyed by day name (T2..CN)
	UpdatedAt     time.Time
}
