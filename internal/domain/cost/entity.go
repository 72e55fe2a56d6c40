package cost

import (
	"time"

	"github.com/shopspring/decimal"
)

// Bucket is the allocation bucket an external cost row belongs to.
type Bucket string

const (
	BucketMeals     Bucket = "meals"
	BucketTransport Bucket = "transport"
	BucketOther     Bucket = "other"
)

// Buckets lists every bucket in allocation order.
func Buckets() []Bucket {
	return []Bucket{BucketMeals, BucketTransport, BucketOther}
}

// ExternalCost is a non-payroll cost row (meal voucher, transport pass)
// keyed by employee and date.
type ExternalCost struct {
	ID          string
	EmployeeID  string
	Date        time.Time
	Bucket      Bucket
	Amount      decimal.Decimal
	Description *string
	CreatedAt   time.Time
}
