package timerecord

import (
	"context"
	"time"
)

// TimeRecordRepository defines data access methods for time records.
// The (employee_id, date) pair is unique; concurrent edits to the same
// employee-day serialize on that index.
type TimeRecordRepository interface {
	// Create inserts a new record. Returns ErrDuplicateDate when the
	// employee already has a record on that date.
	Create(ctx context.Context, record TimeRecord) (TimeRecord, error)

	// Update replaces an existing record.
	Update(ctx context.Context, record TimeRecord) (TimeRecord, error)

	// GetByID retrieves a record by ID.
	GetByID(ctx context.Context, id string) (TimeRecord, error)

	// GetByEmployeeAndDate retrieves the record for an employee-day, or nil
	// when none exists.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*TimeRecord, error)

	// ListByEmployeePeriod retrieves all records for an employee inside
	// [start, end], ordered by date.
	ListByEmployeePeriod(ctx context.Context, employeeID string, start, end time.Time) ([]TimeRecord, error)

	// ListFlagged retrieves records whose punches were incomplete at
	// normalization time.
	ListFlagged(ctx context.Context, limit int) ([]TimeRecord, error)

	// Delete removes a record by ID.
	Delete(ctx context.Context, id string) error
}
