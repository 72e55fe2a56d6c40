package timerecord

// Kind is the closed set of time-record categories. Every record carries
// exactly one kind; all cost and hours semantics branch on it.
type Kind string

const (
	KindWorkdayNormal      Kind = "workday_normal"
	KindSaturdayWorked     Kind = "saturday_worked"
	KindSundayWorked       Kind = "sunday_worked"
	KindHolidayWorked      Kind = "holiday_worked"
	KindHalfDay            Kind = "half_day"
	KindSaturdayOff        Kind = "saturday_off"
	KindSundayOff          Kind = "sunday_off"
	KindHolidayOff         Kind = "holiday_off"
	KindAbsenceUnjustified Kind = "absence_unjustified"
	KindAbsenceJustified   Kind = "absence_justified"
	KindMedicalLeave       Kind = "medical_leave"
	KindVacation           Kind = "vacation"
	KindLicensedLeave      Kind = "licensed_leave"
)

// legacyAliases maps the historical free-form tags still arriving through
// punch imports onto the closed kind set.
var legacyAliases = map[string]Kind{
	"trabalho_normal":      KindWorkdayNormal,
	"trabalhado":           KindWorkdayNormal,
	"meio_periodo":         KindHalfDay,
	"sabado_horas_extras":  KindSaturdayWorked,
	"sabado_trabalhado":    KindSaturdayWorked,
	"domingo_horas_extras": KindSundayWorked,
	"domingo_trabalhado":   KindSundayWorked,
	"feriado_trabalhado":   KindHolidayWorked,
	"sabado_folga":         KindSaturdayOff,
	"domingo_folga":        KindSundayOff,
	"feriado_folga":        KindHolidayOff,
	"falta":                KindAbsenceUnjustified,
	"falta_injustificada":  KindAbsenceUnjustified,
	"falta_justificada":    KindAbsenceJustified,
	"atestado":             KindMedicalLeave,
	"ferias":               KindVacation,
	"licenca":              KindLicensedLeave,
}

// ParseKind resolves a raw tag to a canonical kind. Legacy aliases are
// accepted. The second return is false for unknown tags, which callers
// normalize to KindWorkdayNormal with a logged warning.
func ParseKind(raw string) (Kind, bool) {
	k := Kind(raw)
	if k.valid() {
		return k, true
	}
	if mapped, ok := legacyAliases[raw]; ok {
		return mapped, true
	}
	return KindWorkdayNormal, false
}

func (k Kind) valid() bool {
	switch k {
	case KindWorkdayNormal, KindSaturdayWorked, KindSundayWorked,
		KindHolidayWorked, KindHalfDay, KindSaturdayOff, KindSundayOff,
		KindHolidayOff, KindAbsenceUnjustified, KindAbsenceJustified,
		KindMedicalLeave, KindVacation, KindLicensedLeave:
		return true
	}
	return false
}

// GeneratesCost reports whether records of this kind contribute to labor
// cost. Off days and unjustified absences contribute exactly zero.
func (k Kind) GeneratesCost() bool {
	switch k {
	case KindSaturdayOff, KindSundayOff, KindHolidayOff, KindAbsenceUnjustified:
		return false
	}
	return true
}

// CountsAsWorkedDay reports whether records of this kind count as a day of
// presence.
func (k Kind) CountsAsWorkedDay() bool {
	switch k {
	case KindWorkdayNormal, KindSaturdayWorked, KindSundayWorked,
		KindHolidayWorked, KindHalfDay:
		return true
	}
	return false
}

// AllHoursOvertime reports whether every hour on this kind of day is paid
// at the overtime premium. Delay is undefined on these days.
func (k Kind) AllHoursOvertime() bool {
	switch k {
	case KindSaturdayWorked, KindSundayWorked, KindHolidayWorked:
		return true
	}
	return false
}

// CountsForAttendance reports whether this kind enters the days_with_record
// denominator used by the absenteeism rate. Off days do not.
func (k Kind) CountsForAttendance() bool {
	switch k {
	case KindWorkdayNormal, KindSaturdayWorked, KindSundayWorked,
		KindHolidayWorked, KindHalfDay, KindAbsenceUnjustified,
		KindAbsenceJustified, KindMedicalLeave:
		return true
	}
	return false
}

// IsJustifiedAbsence reports whether the kind is a paid justified absence.
func (k Kind) IsJustifiedAbsence() bool {
	return k == KindAbsenceJustified || k == KindMedicalLeave
}
