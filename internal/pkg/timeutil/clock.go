package timeutil

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// ClockTime is a time-of-day with minute resolution, stored as minutes since
// midnight. Punch times and schedule bounds never need seconds.
type ClockTime int

// ParseClock parses "15:04" into a ClockTime.
func ParseClock(s string) (ClockTime, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("invalid clock time %q: %w", s, err)
	}
	return ClockTime(t.Hour()*60 + t.Minute()), nil
}

// MustClock is ParseClock for literals in tests and defaults.
func MustClock(s string) ClockTime {
	c, err := ParseClock(s)
	if err != nil {
		panic(err)
	}
	return c
}

func (c ClockTime) Minutes() int { return int(c) }

// Sub returns the difference c-other in minutes.
func (c ClockTime) Sub(other ClockTime) int { return int(c) - int(other) }

func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", int(c)/60, int(c)%60)
}

func (c ClockTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

func (c *ClockTime) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseClock(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Value implements driver.Valuer so ClockTime maps to a TIME column.
func (c ClockTime) Value() (driver.Value, error) {
	return fmt.Sprintf("%02d:%02d:00", int(c)/60, int(c)%60), nil
}

// Scan implements sql.Scanner. pgx hands TIME columns over as time.Time or
// string depending on the codec in play.
func (c *ClockTime) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		return fmt.Errorf("cannot scan NULL into ClockTime")
	case time.Time:
		*c = ClockTime(v.Hour()*60 + v.Minute())
		return nil
	case string:
		if len(v) >= 5 {
			v = v[:5]
		}
		parsed, err := ParseClock(v)
		if err != nil {
			return err
		}
		*c = parsed
		return nil
	case []byte:
		return c.Scan(string(v))
	default:
		return fmt.Errorf("cannot scan %T into ClockTime", src)
	}
}
