package models

import (
	"fmt"
	"strings"
	"time"
)

const (
	monthLayout = "2006-01"
	dateLayout  = "2006-01-02"
)

// MonthKey identifies a budgeting period as YYYY-MM.
type MonthKey string

// ParseMonth validates s as a YYYY-MM month key.
func ParseMonth(s string) (MonthKey, error) {
	s = strings.TrimSpace(s)
	if _, err := time.Parse(monthLayout, s); err != nil {
		return "", fmt.Errorf("invalid month %q: expected YYYY-MM", s)
	}
	return MonthKey(s), nil
}

// CurrentMonth returns the month key containing now.
func CurrentMonth(now time.Time) MonthKey {
	return MonthKey(now.Format(monthLayout))
}

// MonthOf derives the month key from a calendar date.
func MonthOf(day time.Time) MonthKey {
	return MonthKey(day.Format(monthLayout))
}

// Label returns the month formatted for display, e.g. "January 2026".
func (m MonthKey) Label() string {
	t, err := time.Parse(monthLayout, string(m))
	if err != nil {
		return string(m)
	}
	return t.Format("January 2006")
}

// String implements fmt.Stringer.
func (m MonthKey) String() string { return string(m) }

// ParseDay parses a calendar date. It accepts YYYY-MM-DD and RFC 3339
// timestamps, in which case only the date part is kept.
func ParseDay(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(dateLayout, s); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), true
	}
	return time.Time{}, false
}

// FormatDay formats a calendar date as YYYY-MM-DD.
func FormatDay(t time.Time) string {
	return t.Format(dateLayout)
}
