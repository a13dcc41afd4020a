package core

import (
	"time"
)

const hoursPerDay = 24

// Clock supplies the current instant.
type Clock interface {
	Now() time.Time
}

// SystemClock is the wall clock.
type SystemClock struct{}

// Now returns the current local time.
func (SystemClock) Now() time.Time {
	return time.Now()
}

// DateOf returns the calendar day of t, as seen in t's own location, as midnight UTC.
// Dates compare and subtract without zone offsets getting in the way.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the number of whole calendar days from 'from' to 'to'.
// The result is negative when 'to' lies before 'from'.
func DaysBetween(from, to time.Time) int {
	return int(DateOf(to).Sub(DateOf(from)).Hours() / hoursPerDay)
}
