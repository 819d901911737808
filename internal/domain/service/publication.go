package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/diegoclair/slack-timetable-bot/internal/domain"
	"github.com/diegoclair/slack-timetable-bot/internal/domain/contract"
	"github.com/diegoclair/slack-timetable-bot/internal/domain/entity"
	"github.com/diegoclair/slack-timetable-bot/internal/format"
	"github.com/diegoclair/slack-timetable-bot/internal/metrics"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
)

// publicationCycle posts and pins each group's schedule of the day,
// replacing the previous pinned post. Cycles of the same group never overlap.
type publicationCycle struct {
	dm        contract.DataManager
	messenger contract.Messenger
	state     *publicationState
	locks     sync.Map // group id -> *sync.Mutex
}

func newPublicationCycle(dm contract.DataManager, messenger contract.Messenger, state *publicationState) *publicationCycle {
	return &publicationCycle{
		dm:        dm,
		messenger: messenger,
		state:     state,
	}
}

// PublishAll runs the cycle for every known group. A failing group never
// stops the others.
func (p *publicationCycle) PublishAll(ctx context.Context, now time.Time) []contract.PublishResult {
	timer := prometheus.NewTimer(metrics.CycleDuration)
	defer timer.ObserveDuration()

	logger := slog.With("run_id", uuid.NewString())

	groups, err := p.dm.Group().GetAll()
	if err != nil {
		logger.Error("Failed to list groups for publication", "error", err)
		return nil
	}

	logger.Info("Publication cycle started", "groups", len(groups))

	results := make([]contract.PublishResult, 0, len(groups))
	for _, group := range groups {
		results = append(results, p.publish(ctx, logger, group, now))
	}

	logger.Info("Publication cycle finished", "groups", len(groups))
	return results
}

func (p *publicationCycle) PublishGroup(ctx context.Context, groupID int64, now time.Time) contract.PublishResult {
	logger := slog.With("run_id", uuid.NewString())

	group, err := p.dm.Group().GetByID(groupID)
	if err == nil && group == nil {
		err = domain.ErrGroupNotFound
	}
	if err != nil {
		logger.Error("Failed to load group for publication", "group_id", groupID, "error", err)
		metrics.Publications.WithLabelValues(string(contract.OutcomeError)).Inc()
		return contract.PublishResult{GroupID: groupID, Outcome: contract.OutcomeError, Err: err}
	}

	return p.publish(ctx, logger, group, now)
}

func (p *publicationCycle) publish(ctx context.Context, logger *slog.Logger, group *entity.Group, now time.Time) (result contract.PublishResult) {
	result.GroupID = group.ID

	lock := p.groupLock(group.ID)
	lock.Lock()
	defer lock.Unlock()

	defer func() {
		metrics.Publications.WithLabelValues(string(result.Outcome)).Inc()
	}()

	logger = logger.With("group_id", group.ID, "channel", group.SlackChannelID)

	p.unpinPrevious(ctx, logger, group)

	day := domain.DayFromWeekday(now.Weekday())
	if !day.Valid() {
		logger.Warn("Skipping publication, weekday not recognized", "weekday", now.Weekday().String())
		result.Outcome = contract.OutcomeSkipped
		return result
	}

	parity := group.Parity(now)
	timetable, err := p.dm.Timetable().GetByGroupID(group.ID)
	if err != nil {
		logger.Error("Failed to load timetable", "error", err)
		result.Outcome = contract.OutcomeError
		result.Err = fmt.Errorf("failed to get timetable: %w", err)
		return result
	}

	text, configured := timetable.Resolve(day, parity)
	post := format.DailyPost(&entity.DaySchedule{
		Day:        day,
		Parity:     parity,
		Date:       now,
		Text:       text,
		Configured: configured,
	})

	messageTS, err := p.messenger.SendMessage(ctx, group.SlackChannelID, post)
	if err != nil {
		logger.Error("Failed to send daily schedule", "error", err)
		result.Outcome = contract.OutcomeSendFailed
		result.Err = err
		return result
	}

	result.MessageTS = messageTS
	result.Outcome = contract.OutcomePublished

	if err := p.messenger.PinMessage(ctx, group.SlackChannelID, messageTS); err != nil {
		// keep the reference so the next cycle still removes this post
		logger.Warn("Failed to pin daily schedule", "message_ts", messageTS, "error", err)
		result.Outcome = contract.OutcomePinFailed
		result.Err = err
	}

	p.state.Set(group.ID, messageTS, now)

	logger.Info("Daily schedule published",
		"message_ts", messageTS,
		"day", format.DayName(day),
		"parity", string(parity),
		"configured", configured,
	)
	return result
}

// groupLock serializes unpin, send, pin and record for one group
func (p *publicationCycle) groupLock(groupID int64) *sync.Mutex {
	lock, _ := p.locks.LoadOrStore(groupID, &sync.Mutex{})
	return lock.(*sync.Mutex)
}

// unpinPrevious removes the last pinned post. Failures are logged and the
// reference is dropped anyway so a vanished message is not retried forever.
func (p *publicationCycle) unpinPrevious(ctx context.Context, logger *slog.Logger, group *entity.Group) {
	messageTS, ok := p.state.Get(group.ID)
	if !ok {
		return
	}

	logger = logger.With("message_ts", messageTS)
	failed := false

	if err := p.messenger.UnpinMessage(ctx, group.SlackChannelID, messageTS); err != nil {
		logger.Warn("Failed to unpin previous schedule", "error", err)
		failed = true
	}
	if err := p.messenger.DeleteMessage(ctx, group.SlackChannelID, messageTS); err != nil {
		logger.Warn("Failed to delete previous schedule", "error", err)
		failed = true
	}

	if failed {
		metrics.UnpinFailures.Inc()
	} else {
		logger.Info("Previous schedule unpinned and deleted")
	}

	p.state.Clear(group.ID)
}
