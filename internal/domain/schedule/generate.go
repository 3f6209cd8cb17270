package schedule

import (
	"sort"

	"github.com/taphoa39/books-backend-go/internal/domain/attendance"
)

// Draft is an attendance record generated from a schedule but not yet
// persisted. The flags travel to the client so it can show which rows still
// need an explicit save.
type Draft struct {
	attendance.Record
	IsSaved bool
	IsNew   bool
}

// GenerateAttendance expands every day, shift, and assigned worker of the
// given schedules into attendance drafts. Hours come from the same
// start/end-time computation attendance uses, midnight wrap included.
// A (date, workerId) pair already present in existingKeys is skipped, so
// rerunning generation never duplicates saved or already-drafted rows.
func GenerateAttendance(schedules []WorkSchedule, existingKeys map[string]bool) []Draft {
	var drafts []Draft

	for _, ws := range schedules {
		for _, day := range ws.Days {
			if day.Date == "" {
				continue
			}
			for _, shift := range Shifts {
				cell := day.Cells()[shift]
				if cell == nil {
					continue
				}
				hours, err := attendance.HoursBetween(cell.StartTime, cell.EndTime)
				if err != nil {
					continue // malformed cell times, nothing to draft
				}
				for _, w := range cell.Workers {
					key := day.Date + "_" + w.WorkerID
					if existingKeys[key] {
						continue
					}
					existingKeys[key] = true
					drafts = append(drafts, Draft{
						Record: attendance.Record{
							ID:         key,
							Date:       day.Date,
							WorkerID:   w.WorkerID,
							WorkerName: w.WorkerName,
							StartTime:  cell.StartTime,
							EndTime:    cell.EndTime,
							TotalHours: hours,
						},
						IsSaved: false,
						IsNew:   true,
					})
				}
			}
		}
	}

	sort.Slice(drafts, func(i, j int) bool {
		if drafts[i].Date != drafts[j].Date {
			return drafts[i].Date < drafts[j].Date
		}
		return drafts[i].WorkerID < drafts[j].WorkerID
	})
	return drafts
}
