package entity

import (
	"fmt"

	"github.com/diegoclair/slack-timetable-bot/internal/domain"
)

// ScheduleEntry is either a FixedEntry (weekends) or a ParityEntry (weekdays)
type ScheduleEntry interface {
	isScheduleEntry()
}

// FixedEntry is parity-independent text
type FixedEntry struct {
	Text string
}

// ParityEntry holds one optional text per week parity
type ParityEntry struct {
	Upper *string
	Lower *string
}

func (FixedEntry) isScheduleEntry()   {}
func (*ParityEntry) isScheduleEntry() {}

func (e *ParityEntry) get(p domain.Parity) (string, bool) {
	var v *string
	switch p {
	case domain.ParityUpper:
		v = e.Upper
	case domain.ParityLower:
		v = e.Lower
	}
	if v == nil {
		return "", false
	}
	return *v, true
}

func (e *ParityEntry) set(p domain.Parity, text string) {
	if p == domain.ParityUpper {
		e.Upper = &text
		return
	}
	e.Lower = &text
}

// Timetable maps days to admin-supplied content. Absent slots resolve to placeholders.
type Timetable struct {
	GroupID int64
	Entries map[domain.Day]ScheduleEntry
}

func NewTimetable(groupID int64) *Timetable {
	return &Timetable{
		GroupID: groupID,
		Entries: make(map[domain.Day]ScheduleEntry),
	}
}

// ValidateEntry checks a mutation without applying it
func ValidateEntry(day domain.Day, parity domain.Parity) error {
	if !day.Valid() {
		return &domain.ValidationError{Field: "day", Err: domain.ErrInvalidDay}
	}
	if day.IsWeekend() {
		if parity != domain.ParityNone {
			return &domain.ValidationError{Field: "parity", Err: domain.ErrParityNotAllowed}
		}
		return nil
	}
	if parity == domain.ParityNone {
		return &domain.ValidationError{Field: "parity", Err: domain.ErrParityRequired}
	}
	if !parity.Valid() {
		return &domain.ValidationError{Field: "parity", Err: domain.ErrInvalidParity}
	}
	return nil
}

// SetEntry stores text for a weekend day, or for one parity side of a weekday
// leaving the other side untouched.
func (t *Timetable) SetEntry(day domain.Day, parity domain.Parity, text string) error {
	if err := ValidateEntry(day, parity); err != nil {
		return err
	}
	if t.Entries == nil {
		t.Entries = make(map[domain.Day]ScheduleEntry)
	}

	if day.IsWeekend() {
		t.Entries[day] = FixedEntry{Text: text}
		return nil
	}

	entry, ok := t.Entries[day].(*ParityEntry)
	if !ok {
		entry = &ParityEntry{}
		t.Entries[day] = entry
	}
	entry.set(parity, text)
	return nil
}

// Clear drops every entry
func (t *Timetable) Clear() {
	t.Entries = make(map[domain.Day]ScheduleEntry)
}

// Resolve returns the display text for a slot. configured is false when the
// text is a placeholder rather than admin content.
func (t *Timetable) Resolve(day domain.Day, parity domain.Parity) (text string, configured bool) {
	if !day.Valid() {
		return domain.NotConfiguredText, false
	}

	var entry ScheduleEntry
	if t != nil {
		entry = t.Entries[day]
	}

	if day.IsWeekend() {
		if fixed, ok := entry.(FixedEntry); ok {
			return fixed.Text, true
		}
		return DayOffText(day), false
	}

	byParity, ok := entry.(*ParityEntry)
	if !ok || byParity == nil {
		return domain.NotConfiguredText, false
	}
	if text, ok := byParity.get(parity); ok {
		return text, true
	}
	return domain.NotConfiguredText, false
}

var dayOffNames = map[domain.Day]string{
	domain.Saturday: "Saturday",
	domain.Sunday:   "Sunday",
}

// DayOffText is the placeholder for an unconfigured weekend day
func DayOffText(day domain.Day) string {
	return fmt.Sprintf("📅 %s is a day off 😴", dayOffNames[day])
}
