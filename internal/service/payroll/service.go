package payroll

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/taphoa39/books-backend-go/internal/domain/attendance"
	"github.com/taphoa39/books-backend-go/internal/domain/employee"
	"github.com/taphoa39/books-backend-go/internal/domain/payroll"
	"github.com/taphoa39/books-backend-go/internal/pkg/payslip"
)

type PayrollServiceImpl struct {
	payrollRepo    payroll.Repository
	attendanceRepo attendance.Repository
	employeeRepo   employee.Repository
}

func NewPayrollService(
	payrollRepo payroll.Repository,
	attendanceRepo attendance.Repository,
	employeeRepo employee.Repository,
) payroll.Service {
	return &PayrollServiceImpl{
		payrollRepo:    payrollRepo,
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
	}
}

// Save implements payroll.Service.
func (s *PayrollServiceImpl) Save(ctx context.Context, req payroll.SaveRecordRequest) (payroll.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.RecordResponse{}, err
	}

	rec := req.ToRecord()
	saved, err := s.payrollRepo.Put(ctx, rec)
	if err != nil {
		return payroll.RecordResponse{}, err
	}

	// A saved line is a line the user wants back.
	if err := s.payrollRepo.RemoveTombstone(ctx, saved.ID); err != nil {
		return payroll.RecordResponse{}, err
	}

	return payroll.ToResponse(saved), nil
}

// SaveBatch implements payroll.Service.
func (s *PayrollServiceImpl) SaveBatch(ctx context.Context, req payroll.BatchSaveRequest) ([]payroll.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	records := make([]payroll.Record, 0, len(req.Records))
	for _, r := range req.Records {
		records = append(records, r.ToRecord())
	}

	if err := s.payrollRepo.PutBatch(ctx, records); err != nil {
		return nil, err
	}
	for _, rec := range records {
		if err := s.payrollRepo.RemoveTombstone(ctx, rec.ID); err != nil {
			return nil, err
		}
	}

	return payroll.ToResponses(records), nil
}

// ListByPeriod implements payroll.Service.
func (s *PayrollServiceImpl) ListByPeriod(ctx context.Context, period string) ([]payroll.RecordResponse, error) {
	if err := validatePeriod(period); err != nil {
		return nil, err
	}

	records, err := s.payrollRepo.ListByPeriod(ctx, period)
	if err != nil {
		return nil, err
	}
	return payroll.ToResponses(records), nil
}

// Delete implements payroll.Service. The tombstone is written first so a
// concurrent reconciliation cannot resurrect the line.
func (s *PayrollServiceImpl) Delete(ctx context.Context, id string) error {
	key, ok := payroll.ParseRecordKey(id)
	if !ok {
		return payroll.ErrInvalidRecordID
	}

	if err := s.payrollRepo.AddTombstone(ctx, payroll.Tombstone{ID: id, Period: key.Period}); err != nil {
		return err
	}

	return s.payrollRepo.Delete(ctx, id)
}

// ReconcilePeriod implements payroll.Service.
func (s *PayrollServiceImpl) ReconcilePeriod(ctx context.Context, period string) ([]payroll.RecordResponse, error) {
	if err := validatePeriod(period); err != nil {
		return nil, err
	}

	from, to, err := periodBounds(period)
	if err != nil {
		return nil, err
	}

	attRecords, err := s.attendanceRepo.List(ctx, attendance.Filter{From: from, To: to})
	if err != nil {
		return nil, err
	}
	existing, err := s.payrollRepo.ListByPeriod(ctx, period)
	if err != nil {
		return nil, err
	}
	deleted, err := s.payrollRepo.TombstonesByPeriod(ctx, period)
	if err != nil {
		return nil, err
	}
	employees, err := s.employeeRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	reconciled := payroll.Reconcile(attRecords, existing, deleted, employees)
	if len(reconciled) > 0 {
		if err := s.payrollRepo.PutBatch(ctx, reconciled); err != nil {
			return nil, err
		}
	}

	return payroll.ToResponses(reconciled), nil
}

// Summary implements payroll.Service.
func (s *PayrollServiceImpl) Summary(ctx context.Context, period string) (payroll.SummaryResponse, error) {
	if err := validatePeriod(period); err != nil {
		return payroll.SummaryResponse{}, err
	}

	records, err := s.payrollRepo.ListByPeriod(ctx, period)
	if err != nil {
		return payroll.SummaryResponse{}, err
	}

	summary := payroll.SummaryResponse{
		Period:        period,
		RecordCount:   len(records),
		TotalThucLinh: decimal.Zero,
		TotalThucTra:  decimal.Zero,
		TotalTrichBH:  decimal.Zero,
		TotalThueTNCN: decimal.Zero,
	}
	for _, rec := range records {
		if rec.NhanVienKhoan {
			summary.ContractorCount++
			summary.TotalThucTra = summary.TotalThucTra.Add(rec.ThucTra)
			summary.TotalThueTNCN = summary.TotalThueTNCN.Add(rec.ThueTNCN)
		} else {
			summary.RegularCount++
			summary.TotalThucLinh = summary.TotalThucLinh.Add(rec.ThucLinh)
			summary.TotalTrichBH = summary.TotalTrichBH.Add(rec.TongTrichBH)
		}
	}

	return summary, nil
}

// Payslip implements payroll.Service.
func (s *PayrollServiceImpl) Payslip(ctx context.Context, id string) ([]byte, error) {
	rec, err := s.payrollRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return payslip.Render(rec)
}

func validatePeriod(period string) error {
	if _, err := time.Parse("2006-01", period); err != nil {
		return payroll.ErrInvalidPeriod
	}
	return nil
}

// periodBounds returns the first and last day of a YYYY-MM period.
func periodBounds(period string) (from, to string, err error) {
	start, err := time.Parse("2006-01", period)
	if err != nil {
		return "", "", fmt.Errorf("invalid period %q: %w", period, err)
	}
	end := start.AddDate(0, 1, -1)
	return start.Format("2006-01-02"), end.Format("2006-01-02"), nil
}
