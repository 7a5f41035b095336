// Package schedule holds the scheduling core: ID generation, the customer-view
// assembler, the contact-action state machine and the derived-field calculator.
// Everything here is pure; "today" is always passed in so callers (and tests)
// control the clock.
package schedule

import (
	"time"
)

// DateLayout is the canonical date-only representation used across the row store.
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD string into a midnight UTC time.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// FormatDate renders a time as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// StartOfDay truncates a time to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// AddMonths adds n calendar months (month-component arithmetic, not a day-count
// approximation). Overflow normalizes per time.AddDate: Jan 31 + 1 month = Mar 2/3.
func AddMonths(t time.Time, n int) time.Time {
	return t.AddDate(0, n, 0)
}

// AddYears adds n calendar years.
func AddYears(t time.Time, n int) time.Time {
	return t.AddDate(n, 0, 0)
}

// DaysBetween returns the whole-day difference end - start, both normalized to
// midnight first.
func DaysBetween(start, end time.Time) int {
	start = StartOfDay(start)
	end = StartOfDay(end)
	return int(end.Sub(start).Hours() / 24)
}
