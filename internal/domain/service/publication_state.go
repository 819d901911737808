package service

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/diegoclair/slack-timetable-bot/internal/domain/contract"
	"github.com/diegoclair/slack-timetable-bot/internal/domain/entity"
)

// publicationState tracks the pinned daily post of each group. Memory is
// authoritative; the database copy is written best-effort so a restart can
// still clean up the last post.
type publicationState struct {
	mu   sync.Mutex
	dm   contract.DataManager
	refs map[int64]string
}

func newPublicationState(dm contract.DataManager) *publicationState {
	return &publicationState{
		dm:   dm,
		refs: make(map[int64]string),
	}
}

func (s *publicationState) Load() error {
	publications, err := s.dm.Publication().GetAll()
	if err != nil {
		return fmt.Errorf("failed to load publications: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range publications {
		s.refs[p.GroupID] = p.MessageTS
	}
	return nil
}

func (s *publicationState) Get(groupID int64) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ts, ok := s.refs[groupID]
	return ts, ok
}

// Set supersedes any previous reference of the group
func (s *publicationState) Set(groupID int64, messageTS string, at time.Time) {
	s.mu.Lock()
	s.refs[groupID] = messageTS
	s.mu.Unlock()

	err := s.dm.Publication().Set(&entity.Publication{GroupID: groupID, MessageTS: messageTS, PublishedAt: at})
	if err != nil {
		slog.Error("Failed to persist pinned message", "group_id", groupID, "message_ts", messageTS, "error", err)
	}
}

func (s *publicationState) Clear(groupID int64) {
	s.mu.Lock()
	delete(s.refs, groupID)
	s.mu.Unlock()

	if err := s.dm.Publication().Delete(groupID); err != nil {
		slog.Error("Failed to clear pinned message", "group_id", groupID, "error", err)
	}
}
