package punch

import (
	"github.com/estruturasdovale/sige-backend-go/internal/config"
	"github.com/estruturasdovale/sige-backend-go/internal/domain/schedule"
	"github.com/estruturasdovale/sige-backend-go/internal/domain/timerecord"
	"github.com/estruturasdovale/sige-backend-go/internal/pkg/timeutil"
)

// defaultLunchMinutes applies to workday_normal records that arrive
// without lunch punches.
const defaultLunchMinutes = 60

// Derived holds the normalizer output for one record.
type Derived struct {
	WorkedHours       float64
	OvertimeHours     float64
	OvertimePct       float64
	DelayMinutesEntry int
	DelayMinutesExit  int
	TotalDelayHours   float64

	// Flagged means entry or exit was missing on a kind that needs them.
	// Derived fields stay at zero; no interpolation happens.
	Flagged bool
}

// Normalizer derives worked/overtime/delay figures from raw punches
// against the contracted schedule. Pure and idempotent: the same inputs
// always produce the same output.
type Normalizer struct{}

func NewNormalizer() *Normalizer {
	return &Normalizer{}
}

// Derive computes the canonical derived fields for a record.
//
// Tolerance rule: each of the four schedule deltas (early entry, late
// exit, late entry, early exit) is forgiven entirely when it is at most
// the tolerance, and counted IN FULL when it exceeds it. An 11 minute
// delay costs 11 minutes, not 1. This is the authoritative rule.
func (n *Normalizer) Derive(rec timerecord.TimeRecord, sched schedule.WorkSchedule, rules config.LaborRules) (Derived, error) {
	if err := checkPunchOrder(rec); err != nil {
		return Derived{}, err
	}

	// Kinds with no worked day carry no derived figures at all.
	if !rec.Kind.CountsAsWorkedDay() {
		return Derived{}, nil
	}

	if rec.Entry == nil || rec.Exit == nil {
		return Derived{Flagged: true}, nil
	}

	if rec.Kind.AllHoursOvertime() {
		return derivePremium(rec, rules), nil
	}

	return deriveNormal(rec, sched, rules), nil
}

// derivePremium handles saturday/sunday/holiday work: every hour is paid
// at the premium, worked hours stay zero and delay is undefined.
func derivePremium(rec timerecord.TimeRecord, rules config.LaborRules) Derived {
	raw := rec.Exit.Sub(*rec.Entry) - lunchMinutes(rec, 0)
	if raw < 0 {
		raw = 0
	}

	pct := rules.OvertimePctSundayHoliday
	if rec.Kind == timerecord.KindSaturdayWorked {
		pct = rules.OvertimePctSaturday
	}

	return Derived{
		OvertimeHours: float64(raw) / 60,
		OvertimePct:   pct,
	}
}

// deriveNormal handles workday_normal and half_day records.
func deriveNormal(rec timerecord.TimeRecord, sched schedule.WorkSchedule, rules config.LaborRules) Derived {
	fallbackLunch := 0
	if rec.Kind == timerecord.KindWorkdayNormal {
		fallbackLunch = defaultLunchMinutes
	}
	lunch := lunchMinutes(rec, fallbackLunch)

	earlyEntry := max(0, sched.Entry.Sub(*rec.Entry))
	lateExit := max(0, rec.Exit.Sub(sched.Exit))
	lateEntry := max(0, rec.Entry.Sub(sched.Entry))
	earlyExit := max(0, sched.Exit.Sub(*rec.Exit))

	tol := rules.ToleranceMinutes
	overtimeMin := applyTolerance(earlyEntry, tol) + applyTolerance(lateExit, tol)
	delayEntryMin := applyTolerance(lateEntry, tol)
	delayExitMin := applyTolerance(earlyExit, tol)

	// Worked hours are the time inside the contracted window; the portion
	// outside it is carried by overtime alone.
	overlapStart := maxClock(*rec.Entry, sched.Entry)
	overlapEnd := minClock(*rec.Exit, sched.Exit)
	overlap := max(0, overlapEnd.Sub(overlapStart))
	worked := max(0, overlap-lunch)

	d := Derived{
		WorkedHours:       float64(worked) / 60,
		OvertimeHours:     float64(overtimeMin) / 60,
		DelayMinutesEntry: delayEntryMin,
		DelayMinutesExit:  delayExitMin,
		TotalDelayHours:   float64(delayEntryMin+delayExitMin) / 60,
	}
	if d.OvertimeHours > 0 {
		d.OvertimePct = rules.OvertimePctSaturday
	}
	return d
}

// applyTolerance forgives a side delta entirely inside the tolerance and
// counts it in full beyond it.
func applyTolerance(deltaMin, toleranceMin int) int {
	if deltaMin <= toleranceMin {
		return 0
	}
	return deltaMin
}

// lunchMinutes returns the lunch deduction: the punched break when both
// lunch punches are present, the fallback otherwise. A half-open lunch
// pair counts as absent.
func lunchMinutes(rec timerecord.TimeRecord, fallback int) int {
	if rec.LunchOut != nil && rec.LunchIn != nil {
		return rec.LunchIn.Sub(*rec.LunchOut)
	}
	return fallback
}

// checkPunchOrder rejects impossible punch sequences.
func checkPunchOrder(rec timerecord.TimeRecord) error {
	if rec.Entry != nil && rec.Exit != nil && rec.Exit.Sub(*rec.Entry) <= 0 {
		return &timerecord.IntegrityError{
			EmployeeID: rec.EmployeeID,
			Date:       rec.Date,
			Field:      "exit",
			Message:    "exit must be after entry",
		}
	}
	if rec.LunchOut != nil && rec.LunchIn != nil && rec.LunchIn.Sub(*rec.LunchOut) < 0 {
		return &timerecord.IntegrityError{
			EmployeeID: rec.EmployeeID,
			Date:       rec.Date,
			Field:      "lunch_in",
			Message:    "lunch return must not be before lunch out",
		}
	}
	return nil
}

func maxClock(a, b timeutil.ClockTime) timeutil.ClockTime {
	if a > b {
		return a
	}
	return b
}

func minClock(a, b timeutil.ClockTime) timeutil.ClockTime {
	if a < b {
		return a
	}
	return b
}
