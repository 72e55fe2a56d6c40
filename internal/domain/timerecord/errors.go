package timerecord

import (
	"errors"
	"fmt"
	"time"
)

// Time record domain errors
var (
	ErrRecordNotFound = errors.New("time record not found")
	ErrDuplicateDate  = errors.New("a time record already exists for this employee and date")
)

// IntegrityError is an impossible record state (exit before entry, lunch
// return before lunch out, duplicate employee-day). It fails the upsert and
// is never silently corrected.
type IntegrityError struct {
	EmployeeID string
	Date       time.Time
	Field      string
	Message    string
}

func (e *IntegrityError) Error() string {
	return fmt.Sprintf("integrity violation on %s for employee %s (%s): %s",
		e.Date.Format("2006-01-02"), e.EmployeeID, e.Field, e.Message)
}
