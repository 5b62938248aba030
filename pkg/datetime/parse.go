// Package datetime provides calendar date utility functions.
package datetime

import (
	"time"

	"github.com/iwvelando/loan-organizer/pkg/constants"
)

const (
	// DateLayout is the format expected in config files for loan and payment
	// dates.
	DateLayout = constants.DateLayout
)

// MustParseTime parses a date string using the given layout and panics on error.
// This is intended for use in tests where the date string is known to be valid.
func MustParseTime(layout, dateStr string) time.Time {
	t, err := time.Parse(layout, dateStr)
	if err != nil {
		panic(err)
	}
	return t
}

// ParseDate parses a YYYY-MM-DD date into midnight UTC.
func ParseDate(dateStr string) (time.Time, error) {
	return time.Parse(DateLayout, dateStr)
}

// Date truncates t to midnight in its own location.
func Date(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// AddMonths returns t shifted by the given number of calendar months. When the
// target month is shorter than t's day of month the result is clamped to the
// last day of that month, so Jan 31 plus one month is Feb 28 (or 29).
func AddMonths(t time.Time, months int) time.Time {
	y, m, d := t.Date()
	first := time.Date(y, m+time.Month(months), 1, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
	if last := daysIn(first); d > last {
		d = last
	}
	return first.AddDate(0, 0, d-1)
}

// AddYears returns t shifted by the given number of calendar years with the
// same end-of-month clamping as AddMonths.
func AddYears(t time.Time, years int) time.Time {
	return AddMonths(t, years*constants.MonthsPerYear)
}

// MonthsBetween returns the number of whole calendar months from start to end.
// A month only counts once end has reached the same day-of-month (and time of
// day) as start; the result is negative when end is before start.
//
// The anniversary is the AddMonths date, so a start on the 31st reaches its
// first month on the last day of a shorter month: Jan 31 to Feb 28 is one
// month here, where a plain day-of-month comparison would count zero. This
// keeps MonthsBetween the inverse of AddMonths and lines balances up with the
// schedule's payment dates.
func MonthsBetween(start, end time.Time) int {
	if end.Before(start) {
		return -MonthsBetween(end, start)
	}
	sy, sm, _ := start.Date()
	ey, em, _ := end.Date()
	months := (ey-sy)*constants.MonthsPerYear + int(em-sm)
	if months > 0 && AddMonths(start, months).After(end) {
		months--
	}
	return months
}

func daysIn(firstOfMonth time.Time) int {
	return firstOfMonth.AddDate(0, 1, -1).Day()
}
