package timerecord

import "context"

// TimeRecordService defines business logic for time-record operations.
// Every create and update runs the punch normalizer synchronously so the
// derived fields are stored canonically.
type TimeRecordService interface {
	// Create validates, normalizes and persists a new record.
	Create(ctx context.Context, req UpsertTimeRecordRequest) (TimeRecordResponse, error)

	// Update validates, re-normalizes and persists an existing record.
	Update(ctx context.Context, req UpsertTimeRecordRequest) (TimeRecordResponse, error)

	// Get retrieves a single record with its cost contribution.
	Get(ctx context.Context, id string) (TimeRecordDetailResponse, error)

	// List retrieves an employee's records for a period.
	List(ctx context.Context, filter ListTimeRecordsFilter) ([]TimeRecordResponse, error)

	// Delete removes a record.
	Delete(ctx context.Context, id string) error

	// ReprocessFlagged re-runs the normalizer over flagged records and
	// returns how many were repaired. Invoked by the background scheduler.
	ReprocessFlagged(ctx context.Context) (int, error)
}
