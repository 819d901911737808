package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/diegoclair/slack-timetable-bot/internal/domain/contract"
	"github.com/robfig/cron/v3"
)

// scheduler fires the publication cycle once a day. A run that is still in
// progress when the next one is due makes the next one skip.
type scheduler struct {
	cron      *cron.Cron
	publisher contract.PublicationService
	spec      string
	location  *time.Location
	entryID   cron.EntryID
	running   bool
}

func newScheduler(publisher contract.PublicationService, spec string, location *time.Location) *scheduler {
	if location == nil {
		location = time.Local
	}

	logger := cronLogger{logger: slog.With("component", "scheduler")}
	return &scheduler{
		cron: cron.New(
			cron.WithLocation(location),
			cron.WithLogger(logger),
			cron.WithChain(cron.Recover(logger), cron.SkipIfStillRunning(logger)),
		),
		publisher: publisher,
		spec:      spec,
		location:  location,
	}
}

func (s *scheduler) Start() error {
	if s.running {
		return nil
	}

	id, err := s.cron.AddFunc(s.spec, s.run)
	if err != nil {
		return fmt.Errorf("invalid publish schedule %q: %w", s.spec, err)
	}
	s.entryID = id

	s.cron.Start()
	s.running = true

	slog.Info("Scheduler started", "schedule", s.spec, "timezone", s.location.String(), "next_run", s.Next())
	return nil
}

func (s *scheduler) Stop() {
	if !s.running {
		return
	}
	slog.Info("Scheduler stopping...")
	<-s.cron.Stop().Done()
	s.running = false
}

// Next is the time of the upcoming publication, zero when not started
func (s *scheduler) Next() time.Time {
	return s.cron.Entry(s.entryID).Next
}

func (s *scheduler) run() {
	now := time.Now().In(s.location)
	results := s.publisher.PublishAll(context.Background(), now)

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
		}
	}
	slog.Info("Daily publication done", "groups", len(results), "failed", failed, "next_run", s.Next())
}

// cronLogger routes cron's own logging to slog
type cronLogger struct {
	logger *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Debug(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.logger.Error(msg, append(keysAndValues, "error", err)...)
}
