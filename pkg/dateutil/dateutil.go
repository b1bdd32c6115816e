// Package dateutil works with calendar-local days encoded as
// "YYYY-MM-DD" strings. Bookings operate at day granularity, never on
// timestamps.
package dateutil

import (
	"sort"
	"time"
)

const DayLayout = "2006-01-02"

// ParseDay parses a canonical day string.
func ParseDay(s string) (time.Time, error) {
	return time.Parse(DayLayout, s)
}

// FormatDay renders the calendar-local day of t.
func FormatDay(t time.Time) string {
	return t.Format(DayLayout)
}

// Day builds a canonical day string from its components.
func Day(year int, month time.Month, day int) string {
	return FormatDay(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// Today is the calendar-local day of now.
func Today(now time.Time) string {
	return FormatDay(now)
}

// RangeDays returns the closed interval of days between a and b
// inclusive, in ascending order. The arguments may arrive in either
// order. Invalid input yields nil.
func RangeDays(a, b string) []string {
	start, err := ParseDay(a)
	if err != nil {
		return nil
	}
	end, err := ParseDay(b)
	if err != nil {
		return nil
	}
	if end.Before(start) {
		start, end = end, start
	}

	var days []string
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		days = append(days, FormatDay(d))
	}
	return days
}

// SortedUnique returns the days sorted ascending with duplicates
// removed. Canonical day strings sort correctly as plain strings.
func SortedUnique(days []string) []string {
	if len(days) == 0 {
		return nil
	}
	out := make([]string, len(days))
	copy(out, days)
	sort.Strings(out)

	unique := out[:1]
	for _, d := range out[1:] {
		if d != unique[len(unique)-1] {
			unique = append(unique, d)
		}
	}
	return unique
}

// HumanDay renders a day for outbound messages, e.g. "2 January 2006".
// Unparseable input is returned untouched.
func HumanDay(s string) string {
	t, err := ParseDay(s)
	if err != nil {
		return s
	}
	return t.Format("2 January 2006")
}

// DaysInMonth is the number of days in the given month.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// FirstWeekday is the weekday index of the 1st of the month, 0=Sunday.
func FirstWeekday(year int, month time.Month) int {
	return int(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Weekday())
}
