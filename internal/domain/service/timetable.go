package service

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/diegoclair/slack-timetable-bot/internal/domain"
	"github.com/diegoclair/slack-timetable-bot/internal/domain/contract"
	"github.com/diegoclair/slack-timetable-bot/internal/domain/entity"
)

type timetableService struct {
	dm contract.DataManager
}

func newTimetable(dm contract.DataManager) *timetableService {
	return &timetableService{dm: dm}
}

func (s *timetableService) SetupGroup(slackChannelID, slackChannelName, slackTeamID string) (*entity.Group, bool, error) {
	// Check if group already exists
	group, err := s.dm.Group().GetBySlackID(slackChannelID)
	if err != nil {
		return nil, false, fmt.Errorf("failed to check group: %w", err)
	}

	if group != nil {
		return group, false, nil
	}

	group = &entity.Group{
		SlackChannelID:   slackChannelID,
		SlackChannelName: slackChannelName,
		SlackTeamID:      slackTeamID,
		Epoch:            domain.DefaultEpoch,
	}

	if err := s.dm.Group().Create(group); err != nil {
		return nil, false, fmt.Errorf("failed to create group: %w", err)
	}

	slog.Info("Group created", "group_id", group.ID, "channel", slackChannelID)
	return group, true, nil
}

func (s *timetableService) getGroup(groupID int64) (*entity.Group, error) {
	group, err := s.dm.Group().GetByID(groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to get group: %w", err)
	}
	if group == nil {
		return nil, domain.ErrGroupNotFound
	}
	return group, nil
}

// resolve reads the current timetable and renders one slot
func (s *timetableService) resolve(groupID int64, day domain.Day, parity domain.Parity, date time.Time) (*entity.DaySchedule, error) {
	timetable, err := s.dm.Timetable().GetByGroupID(groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to get timetable: %w", err)
	}

	text, configured := timetable.Resolve(day, parity)
	return &entity.DaySchedule{
		Day:        day,
		Parity:     parity,
		Date:       date,
		Text:       text,
		Configured: configured,
	}, nil
}

func (s *timetableService) Today(groupID int64, now time.Time) (*entity.DaySchedule, error) {
	group, err := s.getGroup(groupID)
	if err != nil {
		return nil, err
	}

	return s.resolve(groupID, domain.DayFromWeekday(now.Weekday()), group.Parity(now), now)
}

// Tomorrow always uses the opposite of today's parity, even when tomorrow is
// in the same week.
func (s *timetableService) Tomorrow(groupID int64, now time.Time) (*entity.DaySchedule, error) {
	group, err := s.getGroup(groupID)
	if err != nil {
		return nil, err
	}

	tomorrow := now.AddDate(0, 0, 1)
	return s.resolve(groupID, domain.DayFromWeekday(tomorrow.Weekday()), group.Parity(now).Opposite(), tomorrow)
}

func (s *timetableService) Day(groupID int64, day domain.Day, now time.Time) (*entity.DayOverview, error) {
	if !day.Valid() {
		return nil, &domain.ValidationError{Field: "day", Err: domain.ErrInvalidDay}
	}

	group, err := s.getGroup(groupID)
	if err != nil {
		return nil, err
	}

	timetable, err := s.dm.Timetable().GetByGroupID(groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to get timetable: %w", err)
	}

	slot := func(p domain.Parity) entity.DaySchedule {
		text, configured := timetable.Resolve(day, p)
		return entity.DaySchedule{Day: day, Parity: p, Date: now, Text: text, Configured: configured}
	}

	parity := group.Parity(now)
	overview := &entity.DayOverview{Current: slot(parity)}
	if !day.IsWeekend() {
		other := slot(parity.Opposite())
		overview.Other = &other
	}

	return overview, nil
}

func (s *timetableService) WeekInfo(groupID int64, now time.Time) (*entity.WeekInfo, error) {
	group, err := s.getGroup(groupID)
	if err != nil {
		return nil, err
	}

	current := group.Parity(now)
	return &entity.WeekInfo{
		Current: current,
		Next:    current.Opposite(),
		Epoch:   group.Epoch,
		Today:   now,
	}, nil
}

func (s *timetableService) SetDayEntry(groupID int64, day domain.Day, parity domain.Parity, text string) error {
	if err := entity.ValidateEntry(day, parity); err != nil {
		return err
	}

	if _, err := s.getGroup(groupID); err != nil {
		return err
	}

	if err := s.dm.Timetable().Upsert(groupID, day, parity, text); err != nil {
		slog.Error("Failed to persist timetable entry", "group_id", groupID, "day", int(day), "parity", string(parity), "error", err)
		return err
	}

	slog.Info("Timetable entry updated", "group_id", groupID, "day", int(day), "parity", string(parity))
	return nil
}

func (s *timetableService) SetEpoch(groupID int64, epoch time.Time) error {
	if epoch.IsZero() {
		return &domain.ValidationError{Field: "date", Err: domain.ErrInvalidDate}
	}

	if err := s.dm.Group().UpdateEpoch(groupID, domain.DateOnly(epoch)); err != nil {
		slog.Error("Failed to persist epoch", "group_id", groupID, "error", err)
		return err
	}

	slog.Info("Epoch updated", "group_id", groupID, "epoch", epoch.Format(domain.DateLayout))
	return nil
}

func (s *timetableService) ClearAll(groupID int64) error {
	if _, err := s.getGroup(groupID); err != nil {
		return err
	}

	if err := s.dm.Timetable().Clear(groupID); err != nil {
		slog.Error("Failed to clear timetable", "group_id", groupID, "error", err)
		return err
	}

	slog.Info("Timetable cleared", "group_id", groupID)
	return nil
}
