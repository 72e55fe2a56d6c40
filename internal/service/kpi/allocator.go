package kpi

import (
	"github.com/estruturasdovale/sige-backend-go/internal/domain/kpi"
)

// Allocator splits an employee-period total into the project-costing
// buckets.
type Allocator struct{}

func NewAllocator() *Allocator {
	return &Allocator{}
}

// Allocate builds the bucket split from a computed KPI vector.
func (a *Allocator) Allocate(k kpi.EmployeeKPI) kpi.CostAllocation {
	labor := k.LaborCost.Round(2)
	meals := k.MealsCost.Round(2)
	transport := k.TransportCost.Round(2)
	other := k.OtherCosts.Round(2)

	return kpi.CostAllocation{
		Labor:     labor,
		Meals:     meals,
		Transport: transport,
		Other:     other,
		Total:     labor.Add(meals).Add(transport).Add(other),
	}
}
