package utils

import (
	"strings"
	"time"
)

// DateLayout is the calendar-date format used everywhere: prompts,
// rendering and the snapshot columns.
const DateLayout = "2006-01-02"

// DateOnly drops the time-of-day portion, keeping the calendar day in UTC.
// All stays are whole-day; there are no partial-day bookings.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the signed number of whole days from a to b.
func DaysBetween(a, b time.Time) int {
	return int(DateOnly(b).Sub(DateOnly(a)).Hours() / 24)
}

// DateWithin reports whether day falls inside [from, to], inclusive on
// both ends. The check-out day therefore still counts as occupied.
func DateWithin(day, from, to time.Time) bool {
	d := DateOnly(day)
	return !d.Before(DateOnly(from)) && !d.After(DateOnly(to))
}

// ParseDate parses a YYYY-MM-DD calendar date.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, strings.TrimSpace(s))
}
