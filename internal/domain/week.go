package domain

import "time"

// ResolveParity returns the week parity of reference counted from epoch.
// Week zero is Upper. Only the calendar dates matter, and dates before the
// epoch count backwards with floor division.
func ResolveParity(epoch, reference time.Time) Parity {
	week := floorDiv(daysBetween(epoch, reference), 7)
	if week%2 == 0 {
		return ParityUpper
	}
	return ParityLower
}

const secondsPerDay = 24 * 60 * 60

// daysBetween counts calendar days from a to b using each value's own date.
// Unix seconds do not saturate the way time.Duration does past ~292 years.
func daysBetween(a, b time.Time) int {
	da := DateOnly(a)
	db := DateOnly(b)
	return int((db.Unix() - da.Unix()) / secondsPerDay)
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// DateOnly drops the time of day, keeping the calendar date in UTC
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
