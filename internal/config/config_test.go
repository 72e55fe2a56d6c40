package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadLaborRulesDefaults(t *testing.T) {
	rules, err := loadLaborRules()
	require.NoError(t, err)

	assert.Equal(t, 10, rules.ToleranceMinutes)
	assert.Equal(t, time.Sunday, rules.DSRWeekStart)
	assert.Equal(t, 50.0, rules.OvertimePctSaturday)
	assert.Equal(t, 100.0, rules.OvertimePctSundayHoliday)
	assert.Equal(t, 8.8, rules.DefaultDailyHours)
	assert.Len(t, rules.NationalHolidays, 8)
}

func TestLoadLaborRulesFromEnv(t *testing.T) {
	t.Setenv("TOLERANCE_MINUTES", "5")
	t.Setenv("DSR_WEEK_START", "monday")
	t.Setenv("NATIONAL_HOLIDAYS", "01-01,12-25")

	rules, err := loadLaborRules()
	require.NoError(t, err)

	assert.Equal(t, 5, rules.ToleranceMinutes)
	assert.Equal(t, time.Monday, rules.DSRWeekStart)
	require.Len(t, rules.NationalHolidays, 2)
	assert.Equal(t, time.January, rules.NationalHolidays[0].Month)
	assert.Equal(t, 25, rules.NationalHolidays[1].Day)
}

func TestLoadLaborRulesRejectsBadValues(t *testing.T) {
	cases := map[string]string{
		"TOLERANCE_MINUTES":   "-1",
		"DSR_WEEK_START":      "wednesday",
		"DEFAULT_DAILY_HOURS": "0",
		"NATIONAL_HOLIDAYS":   "13-40",
	}
	for key, value := range cases {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, value)
			_, err := loadLaborRules()
			assert.Error(t, err)
		})
	}
}

func TestSettingsReloadKeepsSnapshotOnError(t *testing.T) {
	settings := &LaborSettings{}
	require.NoError(t, settings.Reload())
	before := settings.Rules()

	t.Setenv("TOLERANCE_MINUTES", "not-a-number")
	assert.Error(t, settings.Reload())
	assert.Equal(t, before.ToleranceMinutes, settings.Rules().ToleranceMinutes)
}

func TestRulesReturnsCopyOfHolidays(t *testing.T) {
	settings := &LaborSettings{}
	require.NoError(t, settings.Reload())

	rules := settings.Rules()
	rules.NationalHolidays[0].Day = 15

	assert.Equal(t, 1, settings.Rules().NationalHolidays[0].Day)
}
