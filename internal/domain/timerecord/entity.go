package timerecord

import (
	"time"

	"github.com/estruturasdovale/sige-backend-go/internal/pkg/timeutil"
)

// TimeRecord is one employee-day of the time clock. The derived fields
// (worked/overtime/delay) are filled by the punch normalizer before
// persistence and are canonical: every downstream computation reads them
// instead of re-deriving from the raw punches.
type TimeRecord struct {
	ID         string
	EmployeeID string
	Date       time.Time
	Kind       Kind

	Entry    *timeutil.ClockTime
	LunchOut *timeutil.ClockTime
	LunchIn  *timeutil.ClockTime
	Exit     *timeutil.ClockTime

	WorkedHours       float64
	OvertimeHours     float64
	OvertimePct       float64
	DelayMinutesEntry int
	DelayMinutesExit  int
	TotalDelayHours   float64

	// Flagged marks records whose punches were incomplete when normalized.
	// A background job re-derives them once the data is corrected.
	Flagged bool
	Notes   *string

	CreatedAt time.Time
	UpdatedAt time.Time
}
