package payroll

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taphoa39/books-backend-go/internal/domain/attendance"
	"github.com/taphoa39/books-backend-go/internal/domain/employee"
	"github.com/taphoa39/books-backend-go/internal/domain/payroll"
)

type fakePayrollRepo struct {
	records    map[string]payroll.Record
	tombstones map[string]payroll.Tombstone
}

func newFakePayrollRepo() *fakePayrollRepo {
	return &fakePayrollRepo{
		records:    make(map[string]payroll.Record),
		tombstones: make(map[string]payroll.Tombstone),
	}
}

func (f *fakePayrollRepo) Put(_ context.Context, rec payroll.Record) (payroll.Record, error) {
	f.records[rec.ID] = rec
	return rec, nil
}

func (f *fakePayrollRepo) PutBatch(_ context.Context, recs []payroll.Record) error {
	for _, rec := range recs {
		f.records[rec.ID] = rec
	}
	return nil
}

func (f *fakePayrollRepo) GetByID(_ context.Context, id string) (payroll.Record, error) {
	rec, ok := f.records[id]
	if !ok {
		return payroll.Record{}, payroll.ErrRecordNotFound
	}
	return rec, nil
}

func (f *fakePayrollRepo) ListByPeriod(_ context.Context, period string) ([]payroll.Record, error) {
	var out []payroll.Record
	for _, rec := range f.records {
		if rec.Period == period {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (f *fakePayrollRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.records[id]; !ok {
		return payroll.ErrRecordNotFound
	}
	delete(f.records, id)
	return nil
}

func (f *fakePayrollRepo) AddTombstone(_ context.Context, t payroll.Tombstone) error {
	f.tombstones[t.ID] = t
	return nil
}

func (f *fakePayrollRepo) RemoveTombstone(_ context.Context, id string) error {
	delete(f.tombstones, id)
	return nil
}

func (f *fakePayrollRepo) TombstonesByPeriod(_ context.Context, period string) (map[string]bool, error) {
	out := make(map[string]bool)
	for id, t := range f.tombstones {
		if t.Period == period {
			out[id] = true
		}
	}
	return out, nil
}

type fakeAttendanceRepo struct {
	records []attendance.Record
}

func (f *fakeAttendanceRepo) Put(_ context.Context, rec attendance.Record) (attendance.Record, error) {
	f.records = append(f.records, rec)
	return rec, nil
}

func (f *fakeAttendanceRepo) GetByID(_ context.Context, id string) (attendance.Record, error) {
	for _, rec := range f.records {
		if rec.ID == id {
			return rec, nil
		}
	}
	return attendance.Record{}, attendance.ErrRecordNotFound
}

func (f *fakeAttendanceRepo) List(_ context.Context, filter attendance.Filter) ([]attendance.Record, error) {
	var out []attendance.Record
	for _, rec := range f.records {
		if filter.From != "" && rec.Date < filter.From {
			continue
		}
		if filter.To != "" && rec.Date > filter.To {
			continue
		}
		out = append(out, rec)
	}
	return out, nil
}

func (f *fakeAttendanceRepo) Delete(context.Context, string) error { return nil }

func (f *fakeAttendanceRepo) ExistingKeys(context.Context, string, string) (map[string]bool, error) {
	return map[string]bool{}, nil
}

type fakeEmployeeRepo struct {
	employees []employee.Employee
}

func (f *fakeEmployeeRepo) Create(_ context.Context, emp employee.Employee) (employee.Employee, error) {
	f.employees = append(f.employees, emp)
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByMaNhanVien(_ context.Context, id string) (employee.Employee, error) {
	for _, emp := range f.employees {
		if emp.MaNhanVien == id {
			return emp, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) GetAll(context.Context) ([]employee.Employee, error) {
	return f.employees, nil
}

func (f *fakeEmployeeRepo) GetActive(context.Context) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, emp := range f.employees {
		if emp.IsActive() {
			out = append(out, emp)
		}
	}
	return out, nil
}

func (f *fakeEmployeeRepo) Update(_ context.Context, emp employee.Employee) (employee.Employee, error) {
	return emp, nil
}

func (f *fakeEmployeeRepo) Terminate(context.Context, string, string) error { return nil }

func newTestService() (payroll.Service, *fakePayrollRepo, *fakeAttendanceRepo, *fakeEmployeeRepo) {
	pr := newFakePayrollRepo()
	ar := &fakeAttendanceRepo{}
	er := &fakeEmployeeRepo{employees: []employee.Employee{
		{MaNhanVien: "NV001", HoTen: "Nguyễn Văn A", NhanVienKhoan: true},
		{MaNhanVien: "NV002", HoTen: "Trần Thị B"},
	}}
	return NewPayrollService(pr, ar, er), pr, ar, er
}

func TestPayrollService_Save_RecomputesAndClearsTombstone(t *testing.T) {
	svc, repo, _, _ := newTestService()
	ctx := context.Background()

	repo.tombstones["NV001_2024-12"] = payroll.Tombstone{ID: "NV001_2024-12", Period: "2024-12"}

	resp, err := svc.Save(ctx, payroll.SaveRecordRequest{
		MaNhanVien:    "NV001",
		HoTen:         "Nguyễn Văn A",
		Period:        "2024-12",
		NhanVienKhoan: true,
		TongGioLam:    100,
		DonGiaGio:     decimal.NewFromInt(25_000),
	})
	require.NoError(t, err)

	assert.Equal(t, "NV001_2024-12", resp.ID)
	assert.True(t, resp.TienKhoan.Equal(decimal.NewFromInt(2_500_000)))
	assert.True(t, resp.ThueTNCN.Equal(decimal.NewFromInt(250_000)))
	assert.NotContains(t, repo.tombstones, "NV001_2024-12", "saving clears the tombstone")
}

func TestPayrollService_Delete_WritesTombstone(t *testing.T) {
	svc, repo, _, _ := newTestService()
	ctx := context.Background()

	repo.records["NV001_2024-12"] = payroll.Record{ID: "NV001_2024-12", MaNhanVien: "NV001", Period: "2024-12"}

	require.NoError(t, svc.Delete(ctx, "NV001_2024-12"))

	assert.NotContains(t, repo.records, "NV001_2024-12")
	assert.Contains(t, repo.tombstones, "NV001_2024-12")
	assert.Equal(t, "2024-12", repo.tombstones["NV001_2024-12"].Period)
}

func TestPayrollService_Delete_InvalidID(t *testing.T) {
	svc, _, _, _ := newTestService()

	err := svc.Delete(context.Background(), "garbage")
	assert.ErrorIs(t, err, payroll.ErrInvalidRecordID)
}

func TestPayrollService_ReconcilePeriod_PersistsLines(t *testing.T) {
	svc, repo, attRepo, _ := newTestService()
	ctx := context.Background()

	attRepo.records = []attendance.Record{
		{ID: "2024-12-01_NV001", Date: "2024-12-01", WorkerID: "NV001", TotalHours: 8},
		{ID: "2024-12-02_NV001", Date: "2024-12-02", WorkerID: "NV001", TotalHours: 6.5},
	}

	result, err := svc.ReconcilePeriod(ctx, "2024-12")
	require.NoError(t, err)
	require.Len(t, result, 1)

	assert.Equal(t, 14.5, result[0].TongGioLam)
	assert.Contains(t, repo.records, "NV001_2024-12")
}

func TestPayrollService_ReconcilePeriod_SkipsTombstoned(t *testing.T) {
	svc, repo, attRepo, _ := newTestService()
	ctx := context.Background()

	attRepo.records = []attendance.Record{
		{ID: "2024-12-01_NV001", Date: "2024-12-01", WorkerID: "NV001", TotalHours: 8},
	}
	require.NoError(t, repo.AddTombstone(ctx, payroll.Tombstone{ID: "NV001_2024-12", Period: "2024-12"}))

	result, err := svc.ReconcilePeriod(ctx, "2024-12")
	require.NoError(t, err)

	assert.Empty(t, result)
	assert.NotContains(t, repo.records, "NV001_2024-12")
}

func TestPayrollService_ReconcilePeriod_KeepsUserFields(t *testing.T) {
	svc, repo, attRepo, _ := newTestService()
	ctx := context.Background()

	repo.records["NV001_2024-12"] = payroll.Record{
		ID:            "NV001_2024-12",
		MaNhanVien:    "NV001",
		Period:        "2024-12",
		NhanVienKhoan: true,
		DonGiaGio:     decimal.NewFromInt(30_000),
		TongGioLam:    5,
	}
	attRepo.records = []attendance.Record{
		{ID: "2024-12-01_NV001", Date: "2024-12-01", WorkerID: "NV001", TotalHours: 10},
	}

	result, err := svc.ReconcilePeriod(ctx, "2024-12")
	require.NoError(t, err)
	require.Len(t, result, 1)

	assert.Equal(t, 10.0, result[0].TongGioLam)
	assert.True(t, result[0].DonGiaGio.Equal(decimal.NewFromInt(30_000)))
}

func TestPayrollService_Summary(t *testing.T) {
	svc, repo, _, _ := newTestService()
	ctx := context.Background()

	salaried := payroll.Record{ID: "NV002_2024-12", MaNhanVien: "NV002", Period: "2024-12", LuongCoBan: decimal.NewFromInt(5_000_000), PhuCapAnTrua: decimal.NewFromInt(500_000)}
	salaried.Recalculate()
	contractor := payroll.Record{ID: "NV001_2024-12", MaNhanVien: "NV001", Period: "2024-12", NhanVienKhoan: true, TongGioLam: 100, DonGiaGio: decimal.NewFromInt(25_000)}
	contractor.Recalculate()
	repo.records[salaried.ID] = salaried
	repo.records[contractor.ID] = contractor

	summary, err := svc.Summary(ctx, "2024-12")
	require.NoError(t, err)

	assert.Equal(t, 2, summary.RecordCount)
	assert.Equal(t, 1, summary.RegularCount)
	assert.Equal(t, 1, summary.ContractorCount)
	assert.True(t, summary.TotalThucLinh.Equal(decimal.NewFromInt(4_922_500)))
	assert.True(t, summary.TotalThucTra.Equal(decimal.NewFromInt(2_250_000)))
}

func TestPayrollService_InvalidPeriod(t *testing.T) {
	svc, _, _, _ := newTestService()

	_, err := svc.ListByPeriod(context.Background(), "12-2024")
	assert.ErrorIs(t, err, payroll.ErrInvalidPeriod)
}
