package kpi

import (
	"time"

	"github.com/estruturasdovale/sige-backend-go/internal/domain/cost"
	"github.com/estruturasdovale/sige-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// PeriodQuery identifies an (employee, period) pair for KPI requests.
type PeriodQuery struct {
	EmployeeID string
	Start      string
	End        string
}

func (q *PeriodQuery) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(q.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	start, okStart := validator.IsValidDate(q.Start)
	if !okStart {
		errs = append(errs, validator.ValidationError{
			Field:   "start",
			Message: "start must be in YYYY-MM-DD format",
		})
	}

	end, okEnd := validator.IsValidDate(q.End)
	if !okEnd {
		errs = append(errs, validator.ValidationError{
			Field:   "end",
			Message: "end must be in YYYY-MM-DD format",
		})
	}

	if okStart && okEnd && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end",
			Message: "end must not be before start",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// Period returns the parsed interval. Call only after Validate.
func (q *PeriodQuery) Period() (time.Time, time.Time) {
	start, _ := time.Parse(time.DateOnly, q.Start)
	end, _ := time.Parse(time.DateOnly, q.End)
	return start, end
}

type EmployeeKPIResponse struct {
	EmployeeID string `json:"employee_id"`
	Start      string `json:"start"`
	End        string `json:"end"`

	WorkedHours       float64 `json:"worked_hours"`
	OvertimeHours     float64 `json:"overtime_hours"`
	Absences          int     `json:"absences"`
	DelayHours        float64 `json:"delay_hours"`
	Productivity      float64 `json:"productivity"`
	Absenteeism       float64 `json:"absenteeism"`
	DailyMeanHours    float64 `json:"daily_mean_hours"`
	JustifiedAbsences int     `json:"justified_absences"`
	LostHours         float64 `json:"lost_hours"`
	Efficiency        float64 `json:"efficiency"`

	LaborCost             decimal.Decimal `json:"labor_cost"`
	MealsCost             decimal.Decimal `json:"meals_cost"`
	TransportCost         decimal.Decimal `json:"transport_cost"`
	OtherCosts            decimal.Decimal `json:"other_costs"`
	OvertimeValue         decimal.Decimal `json:"overtime_value"`
	JustifiedAbsenceValue decimal.Decimal `json:"justified_absence_value"`
	TotalCost             decimal.Decimal `json:"total_cost"`

	DSRForfeiture  decimal.Decimal `json:"dsr_forfeiture"`
	DSROnOvertime  decimal.Decimal `json:"dsr_on_overtime"`
	BaseHourlyRate decimal.Decimal `json:"base_hourly_rate"`
	BusinessDays   int             `json:"business_days"`
	DaysWithRecord int             `json:"days_with_record"`
}

func ToKPIResponse(k EmployeeKPI) EmployeeKPIResponse {
	return EmployeeKPIResponse{
		EmployeeID:            k.EmployeeID,
		Start:                 k.Start.Format(time.DateOnly),
		End:                   k.End.Format(time.DateOnly),
		WorkedHours:           k.WorkedHours,
		OvertimeHours:         k.OvertimeHours,
		Absences:              k.Absences,
		DelayHours:            k.DelayHours,
		Productivity:          k.Productivity,
		Absenteeism:           k.Absenteeism,
		DailyMeanHours:        k.DailyMeanHours,
		JustifiedAbsences:     k.JustifiedAbsences,
		LostHours:             k.LostHours,
		Efficiency:            k.Efficiency,
		LaborCost:             k.LaborCost,
		MealsCost:             k.MealsCost,
		TransportCost:         k.TransportCost,
		OtherCosts:            k.OtherCosts,
		OvertimeValue:         k.OvertimeValue,
		JustifiedAbsenceValue: k.JustifiedAbsenceValue,
		TotalCost:             k.TotalCost,
		DSRForfeiture:         k.DSRForfeiture,
		DSROnOvertime:         k.DSROnOvertime,
		BaseHourlyRate:        k.BaseHourlyRate,
		BusinessDays:          k.BusinessDays,
		DaysWithRecord:        k.DaysWithRecord,
	}
}

type WeekAssessmentResponse struct {
	Start     string   `json:"start"`
	End       string   `json:"end"`
	Absences  int      `json:"absences"`
	Forfeited bool     `json:"forfeited"`
	Dates     []string `json:"dates"`
}

type DSRResponse struct {
	ForfeitedWeeks int                      `json:"forfeited_weeks"`
	Amount         decimal.Decimal          `json:"amount"`
	Weeks          []WeekAssessmentResponse `json:"weeks"`
}

func ToDSRResponse(r DSRResult) DSRResponse {
	resp := DSRResponse{
		ForfeitedWeeks: r.ForfeitedWeeks,
		Amount:         r.Amount,
		Weeks:          make([]WeekAssessmentResponse, 0, len(r.Weeks)),
	}
	for _, w := range r.Weeks {
		dates := make([]string, 0, len(w.Dates))
		for _, d := range w.Dates {
			dates = append(dates, d.Format(time.DateOnly))
		}
		resp.Weeks = append(resp.Weeks, WeekAssessmentResponse{
			Start:     w.Start.Format(time.DateOnly),
			End:       w.End.Format(time.DateOnly),
			Absences:  w.Absences,
			Forfeited: w.Forfeited,
			Dates:     dates,
		})
	}
	return resp
}

// ExternalCostItemResponse is one external cost row in the drill-down.
type ExternalCostItemResponse struct {
	ID          string          `json:"id"`
	Date        string          `json:"date"`
	Bucket      string          `json:"bucket"`
	Amount      decimal.Decimal `json:"amount"`
	Description *string         `json:"description,omitempty"`
}

type CostAllocationResponse struct {
	Labor     decimal.Decimal            `json:"labor"`
	Meals     decimal.Decimal            `json:"meals"`
	Transport decimal.Decimal            `json:"transport"`
	Other     decimal.Decimal            `json:"other"`
	Total     decimal.Decimal            `json:"total"`
	Items     []ExternalCostItemResponse `json:"items"`
}

func ToCostAllocationResponse(a CostAllocation, items []cost.ExternalCost) CostAllocationResponse {
	resp := CostAllocationResponse{
		Labor:     a.Labor,
		Meals:     a.Meals,
		Transport: a.Transport,
		Other:     a.Other,
		Total:     a.Total,
		Items:     make([]ExternalCostItemResponse, 0, len(items)),
	}
	for _, item := range items {
		resp.Items = append(resp.Items, ExternalCostItemResponse{
			ID:          item.ID,
			Date:        item.Date.Format(time.DateOnly),
			Bucket:      string(item.Bucket),
			Amount:      item.Amount,
			Description: item.Description,
		})
	}
	return resp
}

type DivergenceResponse struct {
	KPI       string  `json:"kpi"`
	Aggregate float64 `json:"aggregate_value"`
	Naive     float64 `json:"naive_value"`
	Diff      float64 `json:"diff"`
}
