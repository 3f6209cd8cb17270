package payroll

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taphoa39/books-backend-go/internal/domain/attendance"
	"github.com/taphoa39/books-backend-go/internal/domain/employee"
)

func contractorEmp(id, name string) employee.Employee {
	return employee.Employee{MaNhanVien: id, HoTen: name, NhanVienKhoan: true}
}

func TestReconcileCreatesLinesFromAttendance(t *testing.T) {
	att := []attendance.Record{
		{Date: "2024-12-01", WorkerID: "NV001", TotalHours: 8},
		{Date: "2024-12-02", WorkerID: "NV001", TotalHours: 7.5},
		{Date: "2024-12-01", WorkerID: "NV002", TotalHours: 4},
	}
	emps := []employee.Employee{
		contractorEmp("NV001", "Nguyễn Văn A"),
		{MaNhanVien: "NV002", HoTen: "Trần Thị B"},
	}

	result := Reconcile(att, nil, nil, emps)
	require.Len(t, result, 2)

	assert.Equal(t, "NV001_2024-12", result[0].ID)
	assert.Equal(t, 15.5, result[0].TongGioLam)
	assert.True(t, result[0].NhanVienKhoan)
	assert.Equal(t, "Nguyễn Văn A", result[0].HoTen)

	assert.Equal(t, "NV002_2024-12", result[1].ID)
	assert.Equal(t, 4.0, result[1].TongGioLam)
	assert.False(t, result[1].NhanVienKhoan)
}

func TestReconcileSplitsPeriods(t *testing.T) {
	att := []attendance.Record{
		{Date: "2024-11-30", WorkerID: "NV001", TotalHours: 8},
		{Date: "2024-12-01", WorkerID: "NV001", TotalHours: 8},
	}

	result := Reconcile(att, nil, nil, nil)
	require.Len(t, result, 2)
	assert.Equal(t, "NV001_2024-11", result[0].ID)
	assert.Equal(t, "NV001_2024-12", result[1].ID)
}

func TestReconcileKeepsUserEnteredFields(t *testing.T) {
	att := []attendance.Record{
		{Date: "2024-12-01", WorkerID: "NV001", TotalHours: 10},
	}
	existing := Record{
		ID:            "NV001_2024-12",
		MaNhanVien:    "NV001",
		Period:        "2024-12",
		NhanVienKhoan: true,
		TongGioLam:    99, // stale, must be overwritten
		DonGiaGio:     d(25_000),
		Thuong:        d(500_000),
		PhuCap:        d(100_000),
	}

	result := Reconcile(att, []Record{existing}, nil, []employee.Employee{contractorEmp("NV001", "A")})
	require.Len(t, result, 1)

	rec := result[0]
	assert.Equal(t, 10.0, rec.TongGioLam)
	assert.True(t, rec.DonGiaGio.Equal(d(25_000)), "rate survives reconcile")
	assert.True(t, rec.Thuong.Equal(d(500_000)), "bonus survives reconcile")
	assert.True(t, rec.PhuCap.Equal(d(100_000)), "allowance survives reconcile")
	// 10h × 25,000 + 500,000 + 100,000 = 850,000, below the tax threshold
	assert.True(t, rec.ThucTra.Equal(d(850_000)), "thucTra: %s", rec.ThucTra)
}

func TestReconcileIdempotent(t *testing.T) {
	att := []attendance.Record{
		{Date: "2024-12-01", WorkerID: "NV001", TotalHours: 8},
		{Date: "2024-12-02", WorkerID: "NV001", TotalHours: 8},
	}
	emps := []employee.Employee{contractorEmp("NV001", "A")}

	once := Reconcile(att, nil, nil, emps)
	twice := Reconcile(att, once, nil, emps)

	assert.Equal(t, once, twice)
}

func TestReconcileSkipsTombstonedIDs(t *testing.T) {
	att := []attendance.Record{
		{Date: "2024-12-01", WorkerID: "NV001", TotalHours: 8},
		{Date: "2024-12-01", WorkerID: "NV002", TotalHours: 8},
	}
	deleted := map[string]bool{"NV001_2024-12": true}

	result := Reconcile(att, nil, deleted, nil)
	require.Len(t, result, 1)
	assert.Equal(t, "NV002_2024-12", result[0].ID)
}

func TestReconcileEmptyAttendance(t *testing.T) {
	result := Reconcile(nil, []Record{{ID: "NV001_2024-12"}}, nil, nil)
	assert.Empty(t, result, "no attendance means no regenerated lines")
}
