package core

import (
	"fmt"
	"strings"
	"time"
)

// DayLayout is the textual form of a Day
const DayLayout = "2006-01-02"

// Day is a calendar date with no time of day or location attached.
// It is comparable and safe to use as a map key.
type Day struct {
	Year  int
	Month time.Month
	Dom   int
}

// DayOf truncates t to its calendar day in t's own location
func DayOf(t time.Time) Day {
	y, m, d := t.Date()
	return Day{Year: y, Month: m, Dom: d}
}

// ParseDay parses a date in DayLayout form
func ParseDay(s string) (Day, error) {
	t, err := time.Parse(DayLayout, strings.TrimSpace(s))
	if err != nil {
		return Day{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return DayOf(t), nil
}

// Time returns midnight UTC of the day
func (d Day) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Dom, 0, 0, 0, 0, time.UTC)
}

// AddDays returns the day n calendar days later (or earlier for negative n)
func (d Day) AddDays(n int) Day {
	return DayOf(d.Time().AddDate(0, 0, n))
}

func (d Day) Before(other Day) bool {
	return d.Time().Before(other.Time())
}

func (d Day) After(other Day) bool {
	return d.Time().After(other.Time())
}

// IsZero reports whether d is the zero Day, used to mean "unset"
func (d Day) IsZero() bool {
	return d == Day{}
}

func (d Day) String() string {
	return d.Time().Format(DayLayout)
}
