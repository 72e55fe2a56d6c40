package cost

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// ExternalCostRepository defines data access for external cost rows.
type ExternalCostRepository interface {
	// SumByBucket totals an employee's costs in [start, end] for one bucket.
	SumByBucket(ctx context.Context, employeeID string, start, end time.Time, bucket Bucket) (decimal.Decimal, error)

	// ListByEmployeePeriod retrieves the raw rows for drill-down views.
	ListByEmployeePeriod(ctx context.Context, employeeID string, start, end time.Time) ([]ExternalCost, error)
}
