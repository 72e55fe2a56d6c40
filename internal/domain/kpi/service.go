package kpi

import "context"

// KPIService defines the read-side computations over normalized records.
// Results are computed on demand and never persisted; recomputation on the
// same snapshot yields identical output.
type KPIService interface {
	// Compute produces the full indicator vector for an employee-period.
	Compute(ctx context.Context, query PeriodQuery) (EmployeeKPIResponse, error)

	// DSR returns the weekly-rest forfeiture breakdown.
	DSR(ctx context.Context, query PeriodQuery) (DSRResponse, error)

	// Costs returns the bucket allocation of the employee-period total.
	Costs(ctx context.Context, query PeriodQuery) (CostAllocationResponse, error)

	// Audit recomputes every KPI the naive per-record way and reports
	// divergences from the aggregate engine. Empty means the views agree.
	Audit(ctx context.Context, query PeriodQuery) ([]DivergenceResponse, error)
}
