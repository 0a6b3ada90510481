package types

import (
	"time"
)

// DateLayout is the layout for calendar dates in query strings and CLI flags.
const DateLayout = "2006-01-02"

// Date returns the calendar date of t as 00:00 UTC.
//
// Year, month and day are read in t's own location so that a date
// stored as local midnight keeps its day.
func Date(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a "YYYY-MM-DD" string.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// Between reports whether the date of t is within [from, until], both inclusive.
func Between(t, from, until time.Time) bool {
	d := Date(t)
	return !d.Before(Date(from)) && !d.After(Date(until))
}
