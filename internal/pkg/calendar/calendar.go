package calendar

import (
	"time"
)

// Holiday is a fixed national holiday (same month/day every year).
type Holiday struct {
	Month time.Month
	Day   int
}

// IsHoliday reports whether d falls on one of the fixed holidays.
func IsHoliday(d time.Time, holidays []Holiday) bool {
	for _, h := range holidays {
		if d.Month() == h.Month && d.Day() == h.Day {
			return true
		}
	}
	return false
}

// BusinessDaysInMonth counts Mon-Fri days in the given month, excluding
// fixed holidays. Holidays that fall on a weekend do not reduce the count.
func BusinessDaysInMonth(year int, month time.Month, holidays []Holiday) int {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	return BusinessDays(first, last, holidays)
}

// BusinessDays counts Mon-Fri days in [start, end], excluding fixed
// holidays that fall on a weekday.
func BusinessDays(start, end time.Time, holidays []Holiday) int {
	count := 0
	for d := dateOnly(start); !d.After(dateOnly(end)); d = d.AddDate(0, 0, 1) {
		wd := d.Weekday()
		if wd == time.Saturday || wd == time.Sunday {
			continue
		}
		if IsHoliday(d, holidays) {
			continue
		}
		count++
	}
	return count
}

// SundaysAndHolidays counts the paid rest days in [start, end]: every Sunday
// plus every fixed holiday not already falling on a Sunday. This is the
// multiplier for the weekly-rest reflection of overtime pay.
func SundaysAndHolidays(start, end time.Time, holidays []Holiday) int {
	count := 0
	for d := dateOnly(start); !d.After(dateOnly(end)); d = d.AddDate(0, 0, 1) {
		if d.Weekday() == time.Sunday {
			count++
			continue
		}
		if IsHoliday(d, holidays) {
			count++
		}
	}
	return count
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
