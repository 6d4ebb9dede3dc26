// Package dateutil wraps the calendar arithmetic used for itinerary bucketing
// and the long date format used in outbound email.
// All comparisons operate on calendar days in the timestamp's own location,
// ignoring time-of-day.
package dateutil

import "time"

// StartOfDay returns t truncated to midnight in t's location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// DaysBetween returns the number of whole calendar days from a to b.
// Time-of-day is ignored: a Monday 23:00 to Tuesday 01:00 span is one day.
// The result is negative when b's day precedes a's.
//
// The difference is taken between calendar dates, not elapsed time: both
// dates are rebuilt at midnight UTC before subtracting, so a DST transition
// in the inputs' location (a 23- or 25-hour day) cannot skew the count.
func DaysBetween(a, b time.Time) int {
	return int(utcMidnight(b).Sub(utcMidnight(a)) / (24 * time.Hour))
}

// utcMidnight maps t's calendar date onto midnight UTC.
func utcMidnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// FormatLong renders t as a human-readable long date, e.g. "August 30, 2026".
func FormatLong(t time.Time) string {
	return t.Format("January 2, 2006")
}
