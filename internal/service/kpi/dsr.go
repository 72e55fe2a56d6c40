package kpi

import (
	"time"

	"github.com/estruturasdovale/sige-backend-go/internal/domain/kpi"
	"github.com/shopspring/decimal"
)

// DSRCalculator assesses weekly-rest forfeiture under Law 605/49, strict
// mode: one unjustified absence anywhere in a week forfeits that whole
// week's paid rest day, and further absences in the same week change
// nothing.
type DSRCalculator struct{}

func NewDSRCalculator() *DSRCalculator {
	return &DSRCalculator{}
}

// Assess partitions [start, end] into weeks aligned on weekStart and
// forfeits one rest day per week containing at least one absence. The
// forfeited amount per week is salary/30.
func (c *DSRCalculator) Assess(salary decimal.Decimal, absenceDates []time.Time, start, end time.Time, weekStart time.Weekday) kpi.DSRResult {
	result := kpi.DSRResult{Amount: decimal.Zero}

	start = dateOnly(start)
	end = dateOnly(end)
	if end.Before(start) {
		return result
	}

	// Align the first week back onto the configured week start, so a
	// period opening mid-week still lands in its enclosing week.
	offset := (int(start.Weekday()) - int(weekStart) + 7) % 7
	cur := start.AddDate(0, 0, -offset)

	for !cur.After(end) {
		weekEnd := cur.AddDate(0, 0, 6)

		// Reported bounds are clipped to the assessed period; the week
		// membership test below still uses the full week.
		week := kpi.WeekAssessment{Start: maxDate(cur, start), End: minDate(weekEnd, end)}

		for _, d := range absenceDates {
			d = dateOnly(d)
			if !d.Before(cur) && !d.After(weekEnd) {
				week.Absences++
				week.Dates = append(week.Dates, d)
			}
		}
		week.Forfeited = week.Absences > 0
		if week.Forfeited {
			result.ForfeitedWeeks++
		}

		result.Weeks = append(result.Weeks, week)
		cur = cur.AddDate(0, 0, 7)
	}

	dailyRate := salary.Div(decimal.NewFromInt(30))
	result.Amount = dailyRate.Mul(decimal.NewFromInt(int64(result.ForfeitedWeeks))).Round(2)
	return result
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func maxDate(a, b time.Time) time.Time {
	if a.Before(b) {
		return b
	}
	return a
}

func minDate(a, b time.Time) time.Time {
	if a.After(b) {
		return b
	}
	return a
}
