package payroll

import "context"

type Service interface {
	// Save upserts one line with derived columns recomputed, clearing any
	// tombstone for its id.
	Save(ctx context.Context, req SaveRecordRequest) (RecordResponse, error)

	SaveBatch(ctx context.Context, req BatchSaveRequest) ([]RecordResponse, error)

	ListByPeriod(ctx context.Context, period string) ([]RecordResponse, error)

	// Delete removes the line and writes a tombstone so reconciliation
	// does not regenerate it.
	Delete(ctx context.Context, id string) error

	// ReconcilePeriod syncs one period's lines from attendance and saves
	// the result.
	ReconcilePeriod(ctx context.Context, period string) ([]RecordResponse, error)

	Summary(ctx context.Context, period string) (SummaryResponse, error)

	// Payslip renders one line as a PDF.
	Payslip(ctx context.Context, id string) ([]byte, error)
}
