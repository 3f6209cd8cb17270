package attendance

import "context"

// Repository defines data access methods for attendance records.
type Repository interface {
	// Put upserts one record (last write wins).
	Put(ctx context.Context, rec Record) (Record, error)

	GetByID(ctx context.Context, id string) (Record, error)

	// List returns records matching the filter, ordered by date then worker.
	List(ctx context.Context, filter Filter) ([]Record, error)

	Delete(ctx context.Context, id string) error

	// ExistingKeys returns the date_workerId keys present in the given date
	// range, used to dedup schedule-generated drafts.
	ExistingKeys(ctx context.Context, from, to string) (map[string]bool, error)
}
