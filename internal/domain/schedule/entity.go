package schedule

import (
	"time"

	"github.com/estruturasdovale/sige-backend-go/internal/pkg/timeutil"
)

// WorkSchedule is the contracted daily window for one employee.
type WorkSchedule struct {
	ID         string
	EmployeeID string
	Entry      timeutil.ClockTime
	LunchStart timeutil.ClockTime
	LunchEnd   timeutil.ClockTime
	Exit       timeutil.ClockTime
	DailyHours float64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Default returns the schedule applied when an employee has none assigned:
// 07:12 to 17:00 with a one hour lunch, 8.8 contracted hours.
func Default() WorkSchedule {
	return WorkSchedule{
		Entry:      timeutil.MustClock("07:12"),
		LunchStart: timeutil.MustClock("12:00"),
		LunchEnd:   timeutil.MustClock("13:00"),
		Exit:       timeutil.MustClock("17:00"),
		DailyHours: 8.8,
	}
}

// LunchMinutes returns the contracted lunch break length.
func (s WorkSchedule) LunchMinutes() int {
	return s.LunchEnd.Sub(s.LunchStart)
}

// Validate checks the to-the-minute consistency of the schedule:
// daily_hours must equal (exit - entry) - (lunch_end - lunch_start).
func (s WorkSchedule) Validate() error {
	if s.Exit.Sub(s.Entry) <= 0 {
		return ErrInvalidWindow
	}
	if s.LunchMinutes() < 0 {
		return ErrInvalidWindow
	}
	contracted := s.Exit.Sub(s.Entry) - s.LunchMinutes()
	if contracted != int(s.DailyHours*60+0.5) {
		return ErrDailyHoursMismatch
	}
	return nil
}
