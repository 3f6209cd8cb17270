package attendance

import "context"

type Service interface {
	// Save upserts one record, recomputing TotalHours from the times.
	Save(ctx context.Context, req SaveRecordRequest) (RecordResponse, error)

	// SaveBatch persists schedule-generated drafts and bulk edits in one
	// call.
	SaveBatch(ctx context.Context, req BatchSaveRequest) ([]RecordResponse, error)

	List(ctx context.Context, filter Filter) ([]RecordResponse, error)
	Delete(ctx context.Context, id string) error
}
