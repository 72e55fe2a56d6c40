package kpi

import (
	"time"

	"github.com/shopspring/decimal"
)

// EmployeeKPI is the indicator vector for one employee over one period.
// Hours carry full float precision internally; monetary values use decimal
// and are rounded half-up to two places at the final step only.
type EmployeeKPI struct {
	EmployeeID string
	Start      time.Time
	End        time.Time

	WorkedHours       float64
	OvertimeHours     float64
	Absences          int
	DelayHours        float64
	Productivity      float64
	Absenteeism       float64
	DailyMeanHours    float64
	JustifiedAbsences int
	LostHours         float64
	Efficiency        float64

	LaborCost             decimal.Decimal
	MealsCost             decimal.Decimal
	TransportCost         decimal.Decimal
	OtherCosts            decimal.Decimal
	OvertimeValue         decimal.Decimal
	JustifiedAbsenceValue decimal.Decimal
	TotalCost             decimal.Decimal

	// Supporting figures surfaced for drill-down and auditing.
	DSRForfeiture  decimal.Decimal
	DSROnOvertime  decimal.Decimal
	BaseHourlyRate decimal.Decimal
	BusinessDays   int
	DaysWithRecord int
}

// WeekAssessment is one week of the weekly-rest forfeiture breakdown.
type WeekAssessment struct {
	Start     time.Time
	End       time.Time
	Absences  int
	Forfeited bool
	Dates     []time.Time
}

// DSRResult is the weekly-rest forfeiture outcome for a period.
type DSRResult struct {
	ForfeitedWeeks int
	Amount         decimal.Decimal
	Weeks          []WeekAssessment
}

// CostAllocation splits the employee-period total into buckets.
type CostAllocation struct {
	Labor     decimal.Decimal
	Meals     decimal.Decimal
	Transport decimal.Decimal
	Other     decimal.Decimal
	Total     decimal.Decimal
}

// Divergence is one cross-validation mismatch between the aggregate KPI
// and the naive per-record recomputation. A non-empty list is a hard
// failure.
type Divergence struct {
	KPI       string
	Aggregate float64
	Naive     float64
	Diff      float64
}
