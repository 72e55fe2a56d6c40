package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/estruturasdovale/sige-backend-go/internal/domain/cost"
	"github.com/estruturasdovale/sige-backend-go/internal/pkg/database"
	"github.com/shopspring/decimal"
)

type externalCostRepositoryImpl struct {
	db *database.DB
}

func NewExternalCostRepository(db *database.DB) cost.ExternalCostRepository {
	return &externalCostRepositoryImpl{db: db}
}

// SumByBucket implements cost.ExternalCostRepository.
func (r *externalCostRepositoryImpl) SumByBucket(ctx context.Context, employeeID string, start, end time.Time, bucket cost.Bucket) (decimal.Decimal, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM external_costs
		WHERE employee_id = $1 AND date BETWEEN $2 AND $3 AND bucket = $4
	`

	var total decimal.Decimal
	err := q.QueryRow(ctx, query, employeeID, start, end, bucket).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum external costs: %w", err)
	}
	return total, nil
}

// ListByEmployeePeriod implements cost.ExternalCostRepository.
func (r *externalCostRepositoryImpl) ListByEmployeePeriod(ctx context.Context, employeeID string, start, end time.Time) ([]cost.ExternalCost, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, date, bucket, amount, description, created_at
		FROM external_costs
		WHERE employee_id = $1 AND date BETWEEN $2 AND $3
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, employeeID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list external costs: %w", err)
	}
	defer rows.Close()

	var costs []cost.ExternalCost
	for rows.Next() {
		var c cost.ExternalCost
		if err := rows.Scan(&c.ID, &c.EmployeeID, &c.Date, &c.Bucket, &c.Amount, &c.Description, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan external cost: %w", err)
		}
		costs = append(costs, c)
	}
	return costs, rows.Err()
}
