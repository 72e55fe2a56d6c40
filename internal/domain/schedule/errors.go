package schedule

import "errors"

// Schedule domain errors
var (
	ErrScheduleNotFound   = errors.New("work schedule not found")
	ErrInvalidWindow      = errors.New("schedule exit must be after entry and lunch end after lunch start")
	ErrDailyHoursMismatch = errors.New("daily_hours does not match the entry/exit window minus lunch")
)
