package kpi

import (
	"math"
	"time"

	"github.com/estruturasdovale/sige-backend-go/internal/domain/kpi"
	"github.com/estruturasdovale/sige-backend-go/internal/domain/timerecord"
	"github.com/estruturasdovale/sige-backend-go/internal/pkg/calendar"
)

// Comparison tolerances: to the cent for money, a tenth of an hour for
// durations.
const (
	moneyTolerance = 0.01
	hoursTolerance = 0.1
)

// CrossValidator recomputes every indicator by plain per-record summation,
// on purpose sharing no code with the aggregate engine, and reports any
// divergence. An empty report means the two views reconcile.
type CrossValidator struct{}

func NewCrossValidator() *CrossValidator {
	return &CrossValidator{}
}

// Validate compares an engine-produced KPI vector against the naive
// recomputation over the same snapshot.
func (v *CrossValidator) Validate(aggregate kpi.EmployeeKPI, in Inputs) []kpi.Divergence {
	var report []kpi.Divergence

	dailyHours := in.Schedule.DailyHours
	if dailyHours <= 0 {
		dailyHours = in.Rules.DefaultDailyHours
	}
	businessDays := calendar.BusinessDaysInMonth(in.End.Year(), in.End.Month(), in.Rules.NationalHolidays)
	if businessDays == 0 {
		return []kpi.Divergence{{KPI: "business_days", Aggregate: float64(aggregate.BusinessDays)}}
	}
	salary, _ := in.Salary.Float64()
	rate := salary / (float64(businessDays) * dailyHours)

	var (
		worked, overtime, delay, overtimeValue float64
		absences, justified, workedDays        int
		absenceWeeks                           = map[string]bool{}
	)
	for _, r := range in.Records {
		if r.Kind.CountsAsWorkedDay() {
			worked += r.WorkedHours
		}
		if r.Kind == timerecord.KindWorkdayNormal || r.Kind == timerecord.KindHalfDay {
			workedDays++
		}
		overtime += r.OvertimeHours
		if !r.Kind.AllHoursOvertime() {
			delay += r.TotalDelayHours
		}
		if r.OvertimeHours > 0 {
			overtimeValue += r.OvertimeHours * rate * (1 + r.OvertimePct/100)
		}
		if r.Kind == timerecord.KindAbsenceUnjustified {
			absences++
			absenceWeeks[weekKey(r.Date, in.Rules.DSRWeekStart)] = true
		}
		if r.Kind.IsJustifiedAbsence() {
			justified++
		}
	}

	lost := float64(absences)*dailyHours + delay
	dsr := salary / 30 * float64(len(absenceWeeks))

	dsrOnOvertime := 0.0
	if overtimeValue > 0 {
		restDays := calendar.SundaysAndHolidays(in.Start, in.End, in.Rules.NationalHolidays)
		dsrOnOvertime = overtimeValue / float64(businessDays) * float64(restDays)
	}
	laborCost := salary - salary/30*float64(absences) - dsr + overtimeValue + dsrOnOvertime
	justifiedValue := float64(justified) * dailyHours * rate

	dailyMean := 0.0
	if workedDays > 0 {
		dailyMean = worked / float64(workedDays)
	}

	report = compare(report, "worked_hours", aggregate.WorkedHours, worked, hoursTolerance)
	report = compare(report, "daily_mean_hours", aggregate.DailyMeanHours, dailyMean, hoursTolerance)
	report = compare(report, "overtime_hours", aggregate.OvertimeHours, overtime, hoursTolerance)
	report = compare(report, "delay_hours", aggregate.DelayHours, delay, hoursTolerance)
	report = compare(report, "lost_hours", aggregate.LostHours, lost, hoursTolerance)
	report = compare(report, "absences", float64(aggregate.Absences), float64(absences), 0)
	report = compare(report, "justified_absences", float64(aggregate.JustifiedAbsences), float64(justified), 0)
	report = compare(report, "overtime_value", aggregate.OvertimeValue.InexactFloat64(), overtimeValue, moneyTolerance)
	report = compare(report, "dsr_forfeiture", aggregate.DSRForfeiture.InexactFloat64(), dsr, moneyTolerance)
	report = compare(report, "justified_absence_value", aggregate.JustifiedAbsenceValue.InexactFloat64(), justifiedValue, moneyTolerance)
	report = compare(report, "labor_cost", aggregate.LaborCost.InexactFloat64(), laborCost, moneyTolerance)

	naiveTotal := laborCost + in.Meals.InexactFloat64() + in.Transport.InexactFloat64() + in.Other.InexactFloat64()
	report = compare(report, "total_cost", aggregate.TotalCost.InexactFloat64(), naiveTotal, moneyTolerance)

	return report
}

func compare(report []kpi.Divergence, name string, aggregate, naive, tolerance float64) []kpi.Divergence {
	diff := aggregate - naive
	if math.Abs(diff) > tolerance {
		report = append(report, kpi.Divergence{
			KPI:       name,
			Aggregate: aggregate,
			Naive:     naive,
			Diff:      diff,
		})
	}
	return report
}

// weekKey identifies the week a date falls in, aligned on the configured
// week start.
func weekKey(d time.Time, weekStart time.Weekday) string {
	offset := (int(d.Weekday()) - int(weekStart) + 7) % 7
	return d.AddDate(0, 0, -offset).Format(time.DateOnly)
}
