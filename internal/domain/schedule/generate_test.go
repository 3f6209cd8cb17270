package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func weekWithOneShift(date, shift, start, end string, workers ...WorkerAssignment) WorkSchedule {
	day := DaySchedule{Date: date}
	cell := &Cell{Workers: workers, StartTime: start, EndTime: end}
	switch shift {
	case ShiftMorning:
		day.Morning = cell
	case ShiftAfternoon:
		day.Afternoon = cell
	case ShiftEvening:
		day.Evening = cell
	}
	return WorkSchedule{
		WeekNumber:    1,
		WeekStartDate: date,
		Days:          map[string]DaySchedule{"T2": day},
	}
}

func TestGenerateAttendance(t *testing.T) {
	ws := weekWithOneShift("2024-12-01", ShiftMorning, "07:00", "12:00",
		WorkerAssignment{WorkerID: "W1", WorkerName: "Nguyễn Văn A"},
		WorkerAssignment{WorkerID: "W2", WorkerName: "Trần Thị B"},
	)

	drafts := GenerateAttendance([]WorkSchedule{ws}, map[string]bool{})
	require.Len(t, drafts, 2)

	assert.Equal(t, "2024-12-01_W1", drafts[0].ID)
	assert.Equal(t, "W1", drafts[0].WorkerID)
	assert.Equal(t, 5.0, drafts[0].TotalHours)
	assert.False(t, drafts[0].IsSaved)
	assert.True(t, drafts[0].IsNew)
	assert.Equal(t, "W2", drafts[1].WorkerID)
}

func TestGenerateAttendanceSkipsExistingKeys(t *testing.T) {
	ws := weekWithOneShift("2024-12-01", ShiftMorning, "07:00", "12:00",
		WorkerAssignment{WorkerID: "W1", WorkerName: "Nguyễn Văn A"},
		WorkerAssignment{WorkerID: "W2", WorkerName: "Trần Thị B"},
	)

	existing := map[string]bool{"2024-12-01_W1": true}
	drafts := GenerateAttendance([]WorkSchedule{ws}, existing)

	require.Len(t, drafts, 1)
	assert.Equal(t, "W2", drafts[0].WorkerID)
}

func TestGenerateAttendanceDedupsWithinSchedules(t *testing.T) {
	// Same worker on morning and afternoon of the same day: only the first
	// shift produces a draft for that date_workerId key.
	day := DaySchedule{
		Date:      "2024-12-02",
		Morning:   &Cell{Workers: []WorkerAssignment{{WorkerID: "W1", WorkerName: "A"}}, StartTime: "07:00", EndTime: "12:00"},
		Afternoon: &Cell{Workers: []WorkerAssignment{{WorkerID: "W1", WorkerName: "A"}}, StartTime: "12:00", EndTime: "17:00"},
	}
	ws := WorkSchedule{WeekStartDate: "2024-12-02", Days: map[string]DaySchedule{"T2": day}}

	drafts := GenerateAttendance([]WorkSchedule{ws}, map[string]bool{})
	require.Len(t, drafts, 1)
	assert.Equal(t, ShiftHours(t, "07:00", "12:00"), drafts[0].TotalHours)
}

func TestGenerateAttendanceOvernightShift(t *testing.T) {
	ws := weekWithOneShift("2024-12-03", ShiftEvening, "22:00", "06:00",
		WorkerAssignment{WorkerID: "W3", WorkerName: "C"},
	)

	drafts := GenerateAttendance([]WorkSchedule{ws}, map[string]bool{})
	require.Len(t, drafts, 1)
	assert.Equal(t, 8.0, drafts[0].TotalHours)
}

func TestGenerateAttendanceSkipsEmptyCellsAndDays(t *testing.T) {
	ws := WorkSchedule{
		WeekStartDate: "2024-12-02",
		Days: map[string]DaySchedule{
			"T2": {Date: "2024-12-02"}, // no shifts staffed
			"T3": {},                   // no date resolved
		},
	}
	drafts := GenerateAttendance([]WorkSchedule{ws}, map[string]bool{})
	assert.Empty(t, drafts)
}

// ShiftHours is a test helper wrapping the attendance hour computation so
// expectations stay in one place.
func ShiftHours(t *testing.T, start, end string) float64 {
	t.Helper()
	ws := weekWithOneShift("2099-01-01", ShiftMorning, start, end, WorkerAssignment{WorkerID: "X"})
	drafts := GenerateAttendance([]WorkSchedule{ws}, map[string]bool{})
	require.Len(t, drafts, 1)
	return drafts[0].TotalHours
}
