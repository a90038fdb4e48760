package bankbook

import (
	"fmt"
	"time"
)

// DayFormat is the format used to represent days as strings in ISO-8601 format.
const DayFormat = "2006-01-02"

// TimestampFormat is the second-precision format used for ledger entry
// timestamps, both in memory and in the persisted log.
const TimestampFormat = "2006-01-02 15:04:05"

// Day represents a date with day-level granularity. Daily withdrawal caps
// are computed per calendar day, never as a rolling 24h window.
type Day struct {
	y int
	m time.Month
	d int
}

// NewDay returns a normalized Day for the given year, month, and day.
func NewDay(year int, month time.Month, day int) Day {
	d := Day{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// DayOf returns the calendar day a timestamp falls on.
func DayOf(t time.Time) Day { return NewDay(t.Date()) }

// Today returns the current day.
func Today() Day { return DayOf(time.Now()) }

// ParseDay parses a day in "2006-01-02" form.
func ParseDay(s string) (Day, error) {
	t, err := time.Parse(DayFormat, s)
	if err != nil {
		return Day{}, fmt.Errorf("invalid day %q: %w", s, err)
	}
	return DayOf(t), nil
}

// String formats the day in ISO-8601.
func (d Day) String() string { return d.time().Format(DayFormat) }

// IsZero returns true if the day is the zero value.
func (d Day) IsZero() bool { return d.y == 0 && d.m == 0 && d.d == 0 }

// Before reports whether the day d is before x.
func (d Day) Before(x Day) bool { return d.time().Before(x.time()) }

// After reports whether the day d is after x.
func (d Day) After(x Day) bool { return d.time().After(x.time()) }

// time returns a time.Time that is a canonical representation of that day (at midnight UTC).
func (d Day) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }
