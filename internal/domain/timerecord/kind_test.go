package timerecord

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseKindCanonical(t *testing.T) {
	k, known := ParseKind("sunday_worked")
	assert.True(t, known)
	assert.Equal(t, KindSundayWorked, k)
}

func TestParseKindLegacyAliases(t *testing.T) {
	tests := []struct {
		raw  string
		want Kind
	}{
		{"trabalho_normal", KindWorkdayNormal},
		{"trabalhado", KindWorkdayNormal},
		{"meio_periodo", KindHalfDay},
		{"sabado_horas_extras", KindSaturdayWorked},
		{"sabado_trabalhado", KindSaturdayWorked},
		{"domingo_trabalhado", KindSundayWorked},
		{"feriado_trabalhado", KindHolidayWorked},
		{"falta", KindAbsenceUnjustified},
		{"falta_justificada", KindAbsenceJustified},
		{"atestado", KindMedicalLeave},
		{"ferias", KindVacation},
	}
	for _, tt := range tests {
		k, known := ParseKind(tt.raw)
		assert.True(t, known, "alias %q", tt.raw)
		assert.Equal(t, tt.want, k, "alias %q", tt.raw)
	}
}

func TestParseKindUnknownFallsBack(t *testing.T) {
	k, known := ParseKind("mystery_tag")
	assert.False(t, known)
	assert.Equal(t, KindWorkdayNormal, k)
}

func TestKindProperties(t *testing.T) {
	tests := []struct {
		kind             Kind
		cost, worked, ot bool
	}{
		{KindWorkdayNormal, true, true, false},
		{KindSaturdayWorked, true, true, true},
		{KindSundayWorked, true, true, true},
		{KindHolidayWorked, true, true, true},
		{KindHalfDay, true, true, false},
		{KindSaturdayOff, false, false, false},
		{KindSundayOff, false, false, false},
		{KindHolidayOff, false, false, false},
		{KindAbsenceUnjustified, false, false, false},
		{KindAbsenceJustified, true, false, false},
		{KindMedicalLeave, true, false, false},
		{KindVacation, true, false, false},
		{KindLicensedLeave, true, false, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.cost, tt.kind.GeneratesCost(), "%s cost", tt.kind)
		assert.Equal(t, tt.worked, tt.kind.CountsAsWorkedDay(), "%s worked", tt.kind)
		assert.Equal(t, tt.ot, tt.kind.AllHoursOvertime(), "%s all-overtime", tt.kind)
	}
}

func TestAllOvertimeImpliesCostAndWorkedDay(t *testing.T) {
	for _, k := range []Kind{
		KindWorkdayNormal, KindSaturdayWorked, KindSundayWorked,
		KindHolidayWorked, KindHalfDay, KindSaturdayOff, KindSundayOff,
		KindHolidayOff, KindAbsenceUnjustified, KindAbsenceJustified,
		KindMedicalLeave, KindVacation, KindLicensedLeave,
	} {
		if k.AllHoursOvertime() {
			assert.True(t, k.GeneratesCost(), "%s", k)
			assert.True(t, k.CountsAsWorkedDay(), "%s", k)
		}
	}
}

func TestCountsForAttendance(t *testing.T) {
	assert.True(t, KindAbsenceUnjustified.CountsForAttendance())
	assert.True(t, KindMedicalLeave.CountsForAttendance())
	assert.False(t, KindSundayOff.CountsForAttendance())
	assert.False(t, KindVacation.CountsForAttendance())
}
