package punch

import (
	"testing"
	"time"

	"github.com/estruturasdovale/sige-backend-go/internal/config"
	"github.com/estruturasdovale/sige-backend-go/internal/domain/schedule"
	"github.com/estruturasdovale/sige-backend-go/internal/domain/timerecord"
	"github.com/estruturasdovale/sige-backend-go/internal/pkg/timeutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRules() config.LaborRules {
	return config.LaborRules{
		ToleranceMinutes:         10,
		DSRWeekStart:             time.Sunday,
		OvertimePctSaturday:      50,
		OvertimePctSundayHoliday: 100,
		DefaultDailyHours:        8.8,
	}
}

func clock(s string) *timeutil.ClockTime {
	c := timeutil.MustClock(s)
	return &c
}

func record(kind timerecord.Kind, entry, lunchOut, lunchIn, exit string) timerecord.TimeRecord {
	rec := timerecord.TimeRecord{
		EmployeeID: "emp-1",
		Date:       time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		Kind:       kind,
	}
	if entry != "" {
		rec.Entry = clock(entry)
	}
	if lunchOut != "" {
		rec.LunchOut = clock(lunchOut)
	}
	if lunchIn != "" {
		rec.LunchIn = clock(lunchIn)
	}
	if exit != "" {
		rec.Exit = clock(exit)
	}
	return rec
}

func TestDeriveToleranceBoundaries(t *testing.T) {
	// Schedule 08:00-17:00 with one hour lunch.
	sched := schedule.WorkSchedule{
		Entry:      timeutil.MustClock("08:00"),
		LunchStart: timeutil.MustClock("12:00"),
		LunchEnd:   timeutil.MustClock("13:00"),
		Exit:       timeutil.MustClock("17:00"),
		DailyHours: 8,
	}
	n := NewNormalizer()

	tests := []struct {
		name          string
		entry, exit   string
		wantDelayMin  int
		wantOvertimeH float64
	}{
		{"late entry 9 min forgiven", "08:09", "17:00", 0, 0},
		{"late entry 10 min forgiven", "08:10", "17:00", 0, 0},
		{"late entry 11 min counts in full", "08:11", "17:00", 11, 0},
		{"early exit 9 min forgiven", "08:00", "16:51", 0, 0},
		{"early exit 10 min forgiven", "08:00", "16:50", 0, 0},
		{"early exit 11 min counts in full", "08:00", "16:49", 11, 0},
		{"late exit 9 min forgiven", "08:00", "17:09", 0, 0},
		{"late exit 10 min forgiven", "08:00", "17:10", 0, 0},
		{"late exit 11 min counts in full", "08:00", "17:11", 0, 11.0 / 60},
		{"early entry 9 min forgiven", "07:51", "17:00", 0, 0},
		{"early entry 10 min forgiven", "07:50", "17:00", 0, 0},
		{"early entry 11 min counts in full", "07:49", "17:00", 0, 11.0 / 60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := record(timerecord.KindWorkdayNormal, tt.entry, "12:00", "13:00", tt.exit)
			got, err := n.Derive(rec, sched, testRules())
			require.NoError(t, err)
			assert.False(t, got.Flagged)
			assert.Equal(t, tt.wantDelayMin, got.DelayMinutesEntry+got.DelayMinutesExit)
			assert.InDelta(t, tt.wantOvertimeH, got.OvertimeHours, 1e-9)
		})
	}
}

func TestDeriveEarlyEntryForgivenLateExitCounted(t *testing.T) {
	// Contract 07:12-17:00; punches 07:05-17:50. The 7 early minutes are
	// inside the tolerance; the 50 late minutes count in full.
	sched := schedule.Default()
	rec := record(timerecord.KindWorkdayNormal, "07:05", "12:00", "13:00", "17:50")

	got, err := NewNormalizer().Derive(rec, sched, testRules())
	require.NoError(t, err)

	assert.InDelta(t, 50.0/60, got.OvertimeHours, 1e-9)
	assert.Equal(t, 0.0, got.TotalDelayHours)
	assert.InDelta(t, 8.8, got.WorkedHours, 1e-9)
	assert.Equal(t, 50.0, got.OvertimePct)
}

func TestDeriveDelayAndOvertimeOnDifferentSides(t *testing.T) {
	sched := schedule.WorkSchedule{
		Entry:      timeutil.MustClock("08:00"),
		LunchStart: timeutil.MustClock("12:00"),
		LunchEnd:   timeutil.MustClock("13:00"),
		Exit:       timeutil.MustClock("17:00"),
		DailyHours: 8,
	}
	rec := record(timerecord.KindWorkdayNormal, "08:15", "12:00", "13:00", "17:30")

	got, err := NewNormalizer().Derive(rec, sched, testRules())
	require.NoError(t, err)

	assert.InDelta(t, 0.25, got.TotalDelayHours, 1e-9)
	assert.Equal(t, 15, got.DelayMinutesEntry)
	assert.Equal(t, 0, got.DelayMinutesExit)
	assert.InDelta(t, 0.5, got.OvertimeHours, 1e-9)
	// Inside the window 08:15-17:00 minus lunch.
	assert.InDelta(t, 7.75, got.WorkedHours, 1e-9)
}

func TestDeriveSaturdayAllHoursPremium(t *testing.T) {
	rec := record(timerecord.KindSaturdayWorked, "07:00", "", "", "15:00")

	got, err := NewNormalizer().Derive(rec, schedule.Default(), testRules())
	require.NoError(t, err)

	assert.Equal(t, 0.0, got.WorkedHours)
	assert.InDelta(t, 8.0, got.OvertimeHours, 1e-9)
	assert.Equal(t, 50.0, got.OvertimePct)
	assert.Equal(t, 0.0, got.TotalDelayHours)
}

func TestDeriveSundayWithLunchDeducted(t *testing.T) {
	rec := record(timerecord.KindSundayWorked, "07:00", "12:00", "13:00", "16:00")

	got, err := NewNormalizer().Derive(rec, schedule.Default(), testRules())
	require.NoError(t, err)

	assert.Equal(t, 0.0, got.WorkedHours)
	assert.InDelta(t, 8.0, got.OvertimeHours, 1e-9)
	assert.Equal(t, 100.0, got.OvertimePct)
}

func TestDeriveDefaultLunchWhenPunchesAbsent(t *testing.T) {
	sched := schedule.WorkSchedule{
		Entry:      timeutil.MustClock("08:00"),
		LunchStart: timeutil.MustClock("12:00"),
		LunchEnd:   timeutil.MustClock("13:00"),
		Exit:       timeutil.MustClock("17:00"),
		DailyHours: 8,
	}
	rec := record(timerecord.KindWorkdayNormal, "08:00", "", "", "17:00")

	got, err := NewNormalizer().Derive(rec, sched, testRules())
	require.NoError(t, err)

	// 9h window minus the 60 minute default lunch.
	assert.InDelta(t, 8.0, got.WorkedHours, 1e-9)
}

func TestDeriveHalfOpenLunchTreatedAsAbsent(t *testing.T) {
	sched := schedule.WorkSchedule{
		Entry:      timeutil.MustClock("08:00"),
		LunchStart: timeutil.MustClock("12:00"),
		LunchEnd:   timeutil.MustClock("13:00"),
		Exit:       timeutil.MustClock("17:00"),
		DailyHours: 8,
	}
	rec := record(timerecord.KindWorkdayNormal, "08:00", "12:00", "", "17:00")

	got, err := NewNormalizer().Derive(rec, sched, testRules())
	require.NoError(t, err)

	assert.InDelta(t, 8.0, got.WorkedHours, 1e-9)
}

func TestDeriveNoWorkedDayKindsZeroed(t *testing.T) {
	for _, kind := range []timerecord.Kind{
		timerecord.KindSaturdayOff,
		timerecord.KindSundayOff,
		timerecord.KindHolidayOff,
		timerecord.KindAbsenceUnjustified,
		timerecord.KindAbsenceJustified,
		timerecord.KindMedicalLeave,
		timerecord.KindVacation,
		timerecord.KindLicensedLeave,
	} {
		got, err := NewNormalizer().Derive(record(kind, "", "", "", ""), schedule.Default(), testRules())
		require.NoError(t, err)
		assert.Equal(t, Derived{}, got, "kind %s", kind)
	}
}

func TestDeriveMissingExitFlagsRecord(t *testing.T) {
	rec := record(timerecord.KindWorkdayNormal, "08:00", "", "", "")

	got, err := NewNormalizer().Derive(rec, schedule.Default(), testRules())
	require.NoError(t, err)

	assert.True(t, got.Flagged)
	assert.Equal(t, 0.0, got.WorkedHours)
	assert.Equal(t, 0.0, got.OvertimeHours)
}

func TestDeriveExitBeforeEntryFails(t *testing.T) {
	rec := record(timerecord.KindWorkdayNormal, "17:00", "", "", "08:00")

	_, err := NewNormalizer().Derive(rec, schedule.Default(), testRules())

	var integrityErr *timerecord.IntegrityError
	require.ErrorAs(t, err, &integrityErr)
	assert.Equal(t, "exit", integrityErr.Field)
}

func TestDeriveLunchReturnBeforeLunchOutFails(t *testing.T) {
	rec := record(timerecord.KindWorkdayNormal, "08:00", "13:00", "12:00", "17:00")

	_, err := NewNormalizer().Derive(rec, schedule.Default(), testRules())

	var integrityErr *timerecord.IntegrityError
	require.ErrorAs(t, err, &integrityErr)
	assert.Equal(t, "lunch_in", integrityErr.Field)
}

func TestDeriveIdempotent(t *testing.T) {
	rec := record(timerecord.KindWorkdayNormal, "07:05", "12:00", "13:00", "17:50")
	n := NewNormalizer()

	first, err := n.Derive(rec, schedule.Default(), testRules())
	require.NoError(t, err)
	second, err := n.Derive(rec, schedule.Default(), testRules())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
