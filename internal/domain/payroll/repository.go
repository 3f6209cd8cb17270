package payroll

import "context"

// Repository defines data access for payroll records and their deletion
// tombstones. Records are keyed by maNhanVien_period; writes are upserts
// (last write wins).
type Repository interface {
	Put(ctx context.Context, rec Record) (Record, error)
	PutBatch(ctx context.Context, recs []Record) error
	GetByID(ctx context.Context, id string) (Record, error)

	// ListByPeriod returns every record of one YYYY-MM period.
	ListByPeriod(ctx context.Context, period string) ([]Record, error)

	Delete(ctx context.Context, id string) error

	// Tombstones, indexed by period.
	AddTombstone(ctx context.Context, t Tombstone) error
	RemoveTombstone(ctx context.Context, id string) error
	TombstonesByPeriod(ctx context.Context, period string) (map[string]bool, error)
}
