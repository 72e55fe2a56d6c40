package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID        string
	Name      string
	Salary    decimal.Decimal
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
