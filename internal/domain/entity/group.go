package entity

import (
	"time"

	"github.com/diegoclair/slack-timetable-bot/internal/domain"
)

// Group is a Slack channel with its own timetable and epoch
type Group struct {
	ID               int64
	SlackChannelID   string
	SlackChannelName string
	SlackTeamID      string
	Epoch            time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Parity returns the week parity of at for this group
func (g *Group) Parity(at time.Time) domain.Parity {
	return domain.ResolveParity(g.Epoch, at)
}

// Publication is the currently pinned daily post of a group
type Publication struct {
	GroupID     int64
	MessageTS   string
	PublishedAt time.Time
}

// Admin is a privileged Slack user
type Admin struct {
	SlackUserID string
	CreatedAt   time.Time
}

// DaySchedule is a resolved slot ready for display
type DaySchedule struct {
	Day        domain.Day
	Parity     domain.Parity
	Date       time.Time
	Text       string
	Configured bool
}

// DayOverview holds both parities of one day; Other is nil on weekends
type DayOverview struct {
	Current DaySchedule
	Other   *DaySchedule
}

// WeekInfo describes the parity around a date
type WeekInfo struct {
	Current domain.Parity
	Next    domain.Parity
	Epoch   time.Time
	Today   time.Time
}
