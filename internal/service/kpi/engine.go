package kpi

import (
	"math"
	"time"

	"github.com/estruturasdovale/sige-backend-go/internal/config"
	"github.com/estruturasdovale/sige-backend-go/internal/domain/kpi"
	"github.com/estruturasdovale/sige-backend-go/internal/domain/schedule"
	"github.com/estruturasdovale/sige-backend-go/internal/domain/timerecord"
	"github.com/estruturasdovale/sige-backend-go/internal/pkg/calendar"
	"github.com/shopspring/decimal"
)

// Inputs is the snapshot a KPI computation runs over. Everything is read
// up front inside one transaction; the computation itself never touches
// the database.
type Inputs struct {
	EmployeeID string
	Start      time.Time
	End        time.Time
	Salary     decimal.Decimal
	Schedule   schedule.WorkSchedule
	Records    []timerecord.TimeRecord
	Meals      decimal.Decimal
	Transport  decimal.Decimal
	Other      decimal.Decimal
	Rules      config.LaborRules
}

// Calculator aggregates normalized records into the employee-period
// indicator vector. Deterministic and side-effect free.
type Calculator struct {
	dsr *DSRCalculator
}

func NewCalculator() *Calculator {
	return &Calculator{dsr: NewDSRCalculator()}
}

// Compute produces the full KPI vector. Monetary outputs are rounded
// half-up to two places at the final step; hours carry full precision.
func (c *Calculator) Compute(in Inputs) (kpi.EmployeeKPI, error) {
	businessDays := calendar.BusinessDaysInMonth(in.End.Year(), in.End.Month(), in.Rules.NationalHolidays)
	if businessDays == 0 {
		return kpi.EmployeeKPI{}, &kpi.ComputationError{
			EmployeeID: in.EmployeeID,
			Field:      "business_days",
			Message:    "period end-month has zero business days",
		}
	}

	dailyHours := in.Schedule.DailyHours
	if dailyHours <= 0 {
		dailyHours = in.Rules.DefaultDailyHours
	}

	baseRate := in.Salary.Div(decimal.NewFromFloat(float64(businessDays) * dailyHours))

	var (
		workedHours   float64
		overtimeHours float64
		delayHours    float64
		absences      int
		justified     int
		workedDays    int
		daysWithRec   int
		overtimeValue decimal.Decimal
		absenceDates  []time.Time
	)

	for _, r := range in.Records {
		if r.WorkedHours < 0 || r.OvertimeHours < 0 || r.TotalDelayHours < 0 {
			return kpi.EmployeeKPI{}, &kpi.ComputationError{
				EmployeeID: in.EmployeeID,
				Field:      "records",
				Message:    "negative derived duration on " + r.Date.Format(time.DateOnly),
			}
		}

		// The per-record overtime column is the single source of truth.
		overtimeHours += r.OvertimeHours

		if r.Kind.CountsAsWorkedDay() {
			workedHours += r.WorkedHours
		}
		if !r.Kind.AllHoursOvertime() {
			delayHours += r.TotalDelayHours
		}
		if r.Kind == timerecord.KindWorkdayNormal || r.Kind == timerecord.KindHalfDay {
			workedDays++
		}
		if r.Kind.CountsForAttendance() {
			daysWithRec++
		}
		switch {
		case r.Kind == timerecord.KindAbsenceUnjustified:
			absences++
			absenceDates = append(absenceDates, r.Date)
		case r.Kind.IsJustifiedAbsence():
			justified++
		}

		if r.OvertimeHours > 0 {
			premium := decimal.NewFromFloat(1 + r.OvertimePct/100)
			overtimeValue = overtimeValue.Add(
				baseRate.Mul(decimal.NewFromFloat(r.OvertimeHours)).Mul(premium))
		}
	}

	lostHours := float64(absences)*dailyHours + delayHours

	dailyMean := 0.0
	if workedDays > 0 {
		dailyMean = workedHours / float64(workedDays)
	}

	absenteeism := 0.0
	if daysWithRec > 0 {
		absenteeism = 100 * float64(absences) / float64(daysWithRec)
	}

	// No work and no loss means nothing happened, not full productivity.
	productivity := 0.0
	switch {
	case workedHours == 0 && lostHours == 0:
		productivity = 0
	case lostHours == 0:
		productivity = 100
	default:
		productivity = 100 * (workedHours + overtimeHours) / (workedHours + overtimeHours + lostHours)
	}

	efficiency := productivity * (1 - absenteeism/100)

	dsrResult := c.dsr.Assess(in.Salary, absenceDates, in.Start, in.End, in.Rules.DSRWeekStart)

	// Overtime pay reflects onto the paid rest days of the period.
	dsrOnOvertime := decimal.Zero
	if overtimeValue.IsPositive() {
		restDays := calendar.SundaysAndHolidays(in.Start, in.End, in.Rules.NationalHolidays)
		dsrOnOvertime = overtimeValue.
			Div(decimal.NewFromInt(int64(businessDays))).
			Mul(decimal.NewFromInt(int64(restDays)))
	}

	dailyRate := in.Salary.Div(decimal.NewFromInt(30))
	laborCost := in.Salary.
		Sub(dailyRate.Mul(decimal.NewFromInt(int64(absences)))).
		Sub(dsrResult.Amount).
		Add(overtimeValue).
		Add(dsrOnOvertime)

	justifiedValue := baseRate.
		Mul(decimal.NewFromFloat(dailyHours)).
		Mul(decimal.NewFromInt(int64(justified)))

	laborCost = laborCost.Round(2)
	overtimeValue = overtimeValue.Round(2)
	dsrOnOvertime = dsrOnOvertime.Round(2)
	justifiedValue = justifiedValue.Round(2)
	meals := in.Meals.Round(2)
	transport := in.Transport.Round(2)
	other := in.Other.Round(2)
	totalCost := laborCost.Add(meals).Add(transport).Add(other)

	return kpi.EmployeeKPI{
		EmployeeID: in.EmployeeID,
		Start:      in.Start,
		End:        in.End,

		WorkedHours:       workedHours,
		OvertimeHours:     overtimeHours,
		Absences:          absences,
		DelayHours:        delayHours,
		Productivity:      roundPct(productivity),
		Absenteeism:       roundPct(absenteeism),
		DailyMeanHours:    dailyMean,
		JustifiedAbsences: justified,
		LostHours:         lostHours,
		Efficiency:        roundPct(efficiency),

		LaborCost:             laborCost,
		MealsCost:             meals,
		TransportCost:         transport,
		OtherCosts:            other,
		OvertimeValue:         overtimeValue,
		JustifiedAbsenceValue: justifiedValue,
		TotalCost:             totalCost,

		DSRForfeiture:  dsrResult.Amount,
		DSROnOvertime:  dsrOnOvertime,
		BaseHourlyRate: baseRate.Round(4),
		BusinessDays:   businessDays,
		DaysWithRecord: daysWithRec,
	}, nil
}

// roundPct rounds a percentage to one decimal place.
func roundPct(v float64) float64 {
	return math.Round(v*10) / 10
}
