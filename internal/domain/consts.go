package domain

import (
	"strings"
	"time"
)

// Day is an ISO 8601 weekday number
type Day int

// ISO 8601 weekday constants
const (
	Monday    Day = 1
	Tuesday   Day = 2
	Wednesday Day = 3
	Thursday  Day = 4
	Friday    Day = 5
	Saturday  Day = 6
	Sunday    Day = 7
)

// AllDays lists the week in ISO order
var AllDays = []Day{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// Valid reports whether d is one of Monday..Sunday
func (d Day) Valid() bool {
	return d >= Monday && d <= Sunday
}

// IsWeekend reports whether the day holds a single parity-independent entry
func (d Day) IsWeekend() bool {
	return d == Saturday || d == Sunday
}

// Next returns the following day, wrapping Sunday to Monday
func (d Day) Next() Day {
	if d == Sunday {
		return Monday
	}
	return d + 1
}

// DayFromWeekday converts Go's Sunday-first weekday to the ISO day.
// It returns 0 for values outside the week.
func DayFromWeekday(w time.Weekday) Day {
	if w == time.Sunday {
		return Sunday
	}
	d := Day(w)
	if !d.Valid() {
		return 0
	}
	return d
}

// dayTokens maps the command tokens accepted for each day
var dayTokens = map[string]Day{
	"monday":    Monday,
	"mon":       Monday,
	"tuesday":   Tuesday,
	"tue":       Tuesday,
	"wednesday": Wednesday,
	"wed":       Wednesday,
	"thursday":  Thursday,
	"thu":       Thursday,
	"friday":    Friday,
	"fri":       Friday,
	"saturday":  Saturday,
	"sat":       Saturday,
	"sunday":    Sunday,
	"sun":       Sunday,
}

// ParseDay converts a command token into a Day
func ParseDay(token string) (Day, error) {
	d, ok := dayTokens[strings.ToLower(strings.TrimSpace(token))]
	if !ok {
		return 0, &ValidationError{Field: "day", Err: ErrInvalidDay}
	}
	return d, nil
}

// Parity is the alternating week label
type Parity string

const (
	ParityNone  Parity = ""
	ParityUpper Parity = "upper"
	ParityLower Parity = "lower"
)

// Valid reports whether p is Upper or Lower
func (p Parity) Valid() bool {
	return p == ParityUpper || p == ParityLower
}

// Opposite flips Upper and Lower
func (p Parity) Opposite() Parity {
	switch p {
	case ParityUpper:
		return ParityLower
	case ParityLower:
		return ParityUpper
	}
	return ParityNone
}

// ParseParity converts a command token into a Parity
func ParseParity(token string) (Parity, error) {
	p := Parity(strings.ToLower(strings.TrimSpace(token)))
	if !p.Valid() {
		return ParityNone, &ValidationError{Field: "parity", Err: ErrInvalidParity}
	}
	return p, nil
}

// DateLayout is the format used for epochs in commands and storage
const DateLayout = "2006-01-02"

// DefaultEpoch is the start of parity counting for new groups
var DefaultEpoch = time.Date(2024, time.September, 1, 0, 0, 0, 0, time.UTC)

// ParseDate parses a YYYY-MM-DD date
func ParseDate(value string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, &ValidationError{Field: "date", Err: ErrInvalidDate}
	}
	return t, nil
}

// NotConfiguredText marks a weekday slot nobody filled in
const NotConfiguredText = "❌ Schedule not configured"

// DefaultPublishSchedule fires the daily post at 07:00
const DefaultPublishSchedule = "0 7 * * *"
