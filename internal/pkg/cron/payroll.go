package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/taphoa39/books-backend-go/internal/domain/payroll"
)

// PayrollJobs keeps payroll lines in sync with attendance without waiting
// for someone to press the reconcile button.
type PayrollJobs struct {
	payrollService payroll.Service
}

func NewPayrollJobs(payrollService payroll.Service) *PayrollJobs {
	return &PayrollJobs{payrollService: payrollService}
}

// Register wires the reconciliation job into the scheduler.
func (p *PayrollJobs) Register(s *Scheduler) {
	s.AddJob("payroll-reconcile", time.Hour, p.ReconcileRecentPeriods)
}

// ReconcileRecentPeriods reconciles the current month and the previous one.
// The previous month stays open because attendance for late days is often
// entered after the month rolls over.
func (p *PayrollJobs) ReconcileRecentPeriods(ctx context.Context) error {
	now := time.Now()
	periods := []string{
		now.Format("2006-01"),
		now.AddDate(0, -1, 0).Format("2006-01"),
	}

	for _, period := range periods {
		recs, err := p.payrollService.ReconcilePeriod(ctx, period)
		if err != nil {
			return err
		}
		slog.Debug("Payroll reconciled", "period", period, "records", len(recs))
	}
	return nil
}
