package postgresql

import (
	"context"
	"fmt"

	"github.com/estruturasdovale/sige-backend-go/internal/domain/employee"
	"github.com/estruturasdovale/sige-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, salary, active, created_at, updated_at
		FROM employees
		WHERE id = $1
	`

	var e employee.Employee
	err := q.QueryRow(ctx, query, id).Scan(
		&e.ID, &e.Name, &e.Salary, &e.Active, &e.CreatedAt, &e.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}

	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return e, nil
}
