package cron

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/taphoa39/books-backend-go/internal/domain/payroll"
)

type fakePayrollService struct {
	payroll.Service
	reconciled []string
}

func (f *fakePayrollService) ReconcilePeriod(ctx context.Context, period string) ([]payroll.RecordResponse, error) {
	f.reconciled = append(f.reconciled, period)
	return nil, nil
}

func TestReconcileRecentPeriods(t *testing.T) {
	svc := &fakePayrollService{}
	jobs := NewPayrollJobs(svc)

	err := jobs.ReconcileRecentPeriods(context.Background())

	assert.NoError(t, err)
	now := time.Now()
	assert.Equal(t, []string{
		now.Format("2006-01"),
		now.AddDate(0, -1, 0).Format("2006-01"),
	}, svc.reconciled)
}

func TestSchedulerRunOnce(t *testing.T) {
	svc := &fakePayrollService{}
	s := NewScheduler()
	NewPayrollJobs(svc).Register(s)

	s.RunOnce(context.Background())

	assert.Len(t, svc.reconciled, 2)
}
