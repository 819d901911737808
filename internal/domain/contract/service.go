package contract

//go:generate mockgen -source=service.go -destination=../../../mocks/service_mock.go -package=mocks

import (
	"context"
	"time"

	"github.com/diegoclair/slack-timetable-bot/internal/domain"
	"github.com/diegoclair/slack-timetable-bot/internal/domain/entity"
)

type TimetableService interface {
	SetupGroup(slackChannelID, channelName, teamID string) (*entity.Group, bool, error)
	Today(groupID int64, now time.Time) (*entity.DaySchedule, error)
	Tomorrow(groupID int64, now time.Time) (*entity.DaySchedule, error)
	Day(groupID int64, day domain.Day, now time.Time) (*entity.DayOverview, error)
	WeekInfo(groupID int64, now time.Time) (*entity.WeekInfo, error)
	SetDayEntry(groupID int64, day domain.Day, parity domain.Parity, text string) error
	SetEpoch(groupID int64, epoch time.Time) error
	ClearAll(groupID int64) error
}

type AdminService interface {
	IsAdmin(slackUserID string) (bool, error)
	Add(callerID, slackUserID string) error
	Remove(callerID, slackUserID string) error
	List(callerID string) ([]*entity.Admin, error)
}

type PublicationService interface {
	PublishAll(ctx context.Context, now time.Time) []PublishResult
	PublishGroup(ctx context.Context, groupID int64, now time.Time) PublishResult
}

// PublishOutcome is how one group's publication cycle ended
type PublishOutcome string

const (
	OutcomePublished  PublishOutcome = "published"
	OutcomePinFailed  PublishOutcome = "pin_failed"
	OutcomeSendFailed PublishOutcome = "send_failed"
	OutcomeSkipped    PublishOutcome = "skipped"
	OutcomeError      PublishOutcome = "error"
)

type PublishResult struct {
	GroupID   int64
	Outcome   PublishOutcome
	MessageTS string
	Err       error
}
