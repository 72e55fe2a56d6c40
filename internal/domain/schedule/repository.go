package schedule

import "context"

// WorkScheduleRepository defines data access methods for work schedules.
type WorkScheduleRepository interface {
	// GetByEmployeeID retrieves the schedule assigned to an employee.
	// Returns ErrScheduleNotFound when none is assigned; callers fall back
	// to Default().
	GetByEmployeeID(ctx context.Context, employeeID string) (WorkSchedule, error)
}
