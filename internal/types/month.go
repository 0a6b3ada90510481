// Package types implements calendar and money types shared by the models,
// the projection engine and the API.
package types

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

var (
	monthPattern = regexp.MustCompile(`^[0-9]{4}-[0-9]{2}$`)
	datePattern  = regexp.MustCompile(`^[0-9]{4}-[0-9]{2}-[0-9]{2}$`)
)

// Month is a month in a specific year.
//
// It is always set to 00:00 UTC on the first day of the month.
type Month time.Time

// NewMonth returns a new Month.
func NewMonth(year int, month time.Month) Month {
	return Month(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC))
}

// MonthOf returns the Month in which a time occurs.
func MonthOf(t time.Time) Month {
	year, month, _ := t.Date()
	return NewMonth(year, month)
}

// ParseMonth parses a "YYYY-MM" string and returns the Month value it represents.
func ParseMonth(s string) (Month, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return Month{}, err
	}

	return MonthOf(t), nil
}

// String returns the time formatted as YYYY-MM.
func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year(), m.Month())
}

// MarshalJSON implements the json.Marshaler interface.
func (m Month) MarshalJSON() ([]byte, error) {
	return []byte(`"` + m.String() + `"`), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface.
//
// Accepted are "YYYY-MM", "YYYY-MM-DD" and RFC3339 timestamps. Everything
// except the year and month is ignored.
func (m *Month) UnmarshalJSON(data []byte) error {
	value := strings.Trim(string(data), `"`)
	if value == "" || value == "null" {
		return nil
	}

	layout := time.RFC3339
	if monthPattern.MatchString(value) {
		layout = "2006-01"
	} else if datePattern.MatchString(value) {
		layout = DateLayout
	}

	t, err := time.Parse(layout, value)
	if err != nil {
		return err
	}

	*m = MonthOf(t)
	return nil
}

// Year returns the year of the month.
func (m Month) Year() int {
	return time.Time(m).Year()
}

// Month returns the month of the year.
func (m Month) Month() time.Month {
	return time.Time(m).Month()
}

// IsZero reports if the month is the zero value.
func (m Month) IsZero() bool {
	return time.Time(m).IsZero()
}

// AddDate adds a specified amount of years and months.
func (m Month) AddDate(years, months int) Month {
	return Month(time.Time(m).AddDate(years, months, 0))
}

// Index returns a running month number, used to compare and subtract months.
func (m Month) Index() int {
	return m.Year()*12 + int(m.Month()) - 1
}

// MonthsUntil returns how many months n is after m. It is negative if n is before m.
func (m Month) MonthsUntil(n Month) int {
	return n.Index() - m.Index()
}

// Before reports whether the month m is before n.
func (m Month) Before(n Month) bool {
	return m.Index() < n.Index()
}

// After reports whether the month m is after n.
func (m Month) After(n Month) bool {
	return m.Index() > n.Index()
}

// Equal reports whether m and n represent the same month.
func (m Month) Equal(n Month) bool {
	return m.Index() == n.Index()
}

// Contains reports whether the time instant is in the month.
func (m Month) Contains(t time.Time) bool {
	return t.Year() == m.Year() && t.Month() == m.Month()
}

// Days returns the number of days in the month.
func (m Month) Days() int {
	return time.Date(m.Year(), m.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// First returns the first day of the month.
func (m Month) First() time.Time {
	return time.Date(m.Year(), m.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// Last returns the last day of the month at 00:00 UTC.
func (m Month) Last() time.Time {
	return time.Date(m.Year(), m.Month(), m.Days(), 0, 0, 0, 0, time.UTC)
}

// Day returns the date of the given day in the month.
//
// If the day does not exist in the month, e.g. the 31st of April, ok is false.
// The date is never moved into the next month.
func (m Month) Day(day int) (t time.Time, ok bool) {
	if day < 1 || day > m.Days() {
		return time.Time{}, false
	}

	return time.Date(m.Year(), m.Month(), day, 0, 0, 0, 0, time.UTC), true
}
