package payroll

import (
	"math"
	"sort"

	"github.com/taphoa39/books-backend-go/internal/domain/attendance"
	"github.com/taphoa39/books-backend-go/internal/domain/employee"
)

// Reconcile folds attendance into payroll lines, one per (worker, period)
// group found in the attendance set.
//
// Hours are recomputed as a fresh sum on every run, never incremented, so
// reconciling the same attendance twice yields the same lines. Groups whose
// id is in deletedIDs are skipped entirely; that is what keeps a manually
// deleted line from coming back on the next sync. When a line already
// exists, every user-entered pay field is kept and only TongGioLam is
// overwritten; new lines start zeroed with the employee's classification
// copied in.
func Reconcile(attRecords []attendance.Record, existing []Record, deletedIDs map[string]bool, employees []employee.Employee) []Record {
	hours := make(map[RecordKey]float64)
	for _, a := range attRecords {
		if a.WorkerID == "" {
			continue
		}
		key := RecordKey{MaNhanVien: a.WorkerID, Period: a.Period()}
		hours[key] += a.TotalHours
	}

	existingByID := make(map[string]Record, len(existing))
	for _, rec := range existing {
		existingByID[rec.ID] = rec
	}
	empByID := make(map[string]employee.Employee, len(employees))
	for _, emp := range employees {
		empByID[emp.MaNhanVien] = emp
	}

	var result []Record
	for key, total := range hours {
		id := key.String()
		if deletedIDs[id] {
			continue
		}

		rec, ok := existingByID[id]
		if !ok {
			rec = Record{
				ID:         id,
				MaNhanVien: key.MaNhanVien,
				Period:     key.Period,
			}
			if emp, found := empByID[key.MaNhanVien]; found {
				rec.HoTen = emp.HoTen
				rec.ChucDanh = emp.ChucDanh
				rec.NhanVienKhoan = emp.NhanVienKhoan
			}
		}

		rec.TongGioLam = math.Round(total*100) / 100
		rec.Recalculate()
		result = append(result, rec)
	}

	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}
