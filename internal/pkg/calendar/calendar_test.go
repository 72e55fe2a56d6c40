package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func brazilHolidays() []Holiday {
	return []Holiday{
		{Month: time.January, Day: 1},
		{Month: time.April, Day: 21},
		{Month: time.May, Day: 1},
		{Month: time.September, Day: 7},
		{Month: time.October, Day: 12},
		{Month: time.November, Day: 2},
		{Month: time.November, Day: 15},
		{Month: time.December, Day: 25},
	}
}

func TestBusinessDaysInMonth(t *testing.T) {
	tests := []struct {
		name  string
		year  int
		month time.Month
		want  int
	}{
		// 23 weekdays, no holidays.
		{"july 2025", 2025, time.July, 23},
		// Both Nov 2 (Sunday) and Nov 15 (Saturday) fall on weekends and
		// must not reduce the count.
		{"november 2025 weekend holidays", 2025, time.November, 20},
		// Dec 25 2025 is a Thursday: 23 weekdays minus 1.
		{"december 2025", 2025, time.December, 22},
		// June 2026 opens on a Monday, 22 weekdays, no holidays.
		{"june 2026", 2026, time.June, 22},
		// May 1 2026 is a Friday: 21 weekdays minus 1.
		{"may 2026", 2026, time.May, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BusinessDaysInMonth(tt.year, tt.month, brazilHolidays())
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSundaysAndHolidays(t *testing.T) {
	// June 2026: exactly the 4 Sundays.
	start := time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, time.June, 30, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 4, SundaysAndHolidays(start, end, brazilHolidays()))

	// September 2026: 4 Sundays plus the independence holiday (Monday
	// Sep 7).
	start = time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)
	end = time.Date(2026, time.September, 30, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 5, SundaysAndHolidays(start, end, brazilHolidays()))
}

func TestSundayHolidayNotDoubleCounted(t *testing.T) {
	// Nov 15 2026 is a Sunday; it must count once.
	start := time.Date(2026, time.November, 15, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, time.November, 15, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 1, SundaysAndHolidays(start, end, brazilHolidays()))
}

func TestIsHoliday(t *testing.T) {
	assert.True(t, IsHoliday(time.Date(2026, time.December, 25, 0, 0, 0, 0, time.UTC), brazilHolidays()))
	assert.False(t, IsHoliday(time.Date(2026, time.December, 24, 0, 0, 0, 0, time.UTC), brazilHolidays()))
}

func TestBusinessDaysPartialRange(t *testing.T) {
	// Mon Jun 1 through Sun Jun 7 2026: five weekdays.
	start := time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, time.June, 7, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 5, BusinessDays(start, end, brazilHolidays()))
}
