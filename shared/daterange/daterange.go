// Package daterange holds the calendar-date arithmetic shared by the
// availability, pricing and reconciliation domains. All ranges are half-open:
// a stay occupies [check_in, check_out), so a stay ending on day D never
// collides with one starting on day D.
package daterange

import (
	"time"
	"tourbase/shared/constant"
)

// Day truncates a timestamp to its calendar date in UTC.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseDay parses a YYYY-MM-DD string into a UTC calendar date.
func ParseDay(value string) (time.Time, error) {
	return time.Parse(constant.DayFormat, value)
}

// FormatDay renders a calendar date as YYYY-MM-DD.
func FormatDay(t time.Time) string {
	return t.Format(constant.DayFormat)
}

// Overlaps reports whether the half-open ranges [aStart, aEnd) and
// [bStart, bEnd) share at least one night.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// Contains reports whether day falls inside the half-open range [start, end).
func Contains(start, end, day time.Time) bool {
	return !day.Before(start) && day.Before(end)
}

// DaysBetween returns the whole number of days from a to b. Negative when b
// precedes a.
func DaysBetween(a, b time.Time) int {
	return int(Day(b).Sub(Day(a)).Hours() / 24)
}

// Nights returns the number of nights covered by [checkIn, checkOut).
func Nights(checkIn, checkOut time.Time) int {
	n := DaysBetween(checkIn, checkOut)
	if n < 0 {
		return 0
	}

	return n
}

// OverlapNights returns how many nights of [aStart, aEnd) fall inside
// [bStart, bEnd).
func OverlapNights(aStart, aEnd, bStart, bEnd time.Time) int {
	start := aStart
	if bStart.After(start) {
		start = bStart
	}

	end := aEnd
	if bEnd.Before(end) {
		end = bEnd
	}

	return Nights(start, end)
}
