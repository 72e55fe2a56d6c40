package postgresql

import (
	"context"
	"fmt"

	"github.com/estruturasdovale/sige-backend-go/internal/domain/schedule"
	"github.com/estruturasdovale/sige-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type workScheduleRepositoryImpl struct {
	db *database.DB
}

func NewWorkScheduleRepository(db *database.DB) schedule.WorkScheduleRepository {
	return &workScheduleRepositoryImpl{db: db}
}

// GetByEmployeeID implements schedule.WorkScheduleRepository.
func (r *workScheduleRepositoryImpl) GetByEmployeeID(ctx context.Context, employeeID string) (schedule.WorkSchedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, entry_time, lunch_start, lunch_end, exit_time,
			   daily_hours, created_at, updated_at
		FROM work_schedules
		WHERE employee_id = $1
	`

	var s schedule.WorkSchedule
	err := q.QueryRow(ctx, query, employeeID).Scan(
		&s.ID, &s.EmployeeID, &s.Entry, &s.LunchStart, &s.LunchEnd, &s.Exit,
		&s.DailyHours, &s.CreatedAt, &s.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return schedule.WorkSchedule{}, schedule.ErrScheduleNotFound
	}

	if err != nil {
		return schedule.WorkSchedule{}, fmt.Errorf("failed to get work schedule: %w", err)
	}

	return s, nil
}
