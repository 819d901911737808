package service

import (
	"context"
	"fmt"
	"time"

	"github.com/diegoclair/slack-timetable-bot/internal/domain/contract"
)

type Instance struct {
	Timetable   *timetableService
	Admin       *adminService
	Publication *publicationCycle
	Scheduler   *scheduler

	state *publicationState
}

func NewInstance(dm contract.DataManager, messenger contract.Messenger, publishSpec string, location *time.Location) *Instance {
	state := newPublicationState(dm)
	publication := newPublicationCycle(dm, messenger, state)

	return &Instance{
		Timetable:   newTimetable(dm),
		Admin:       newAdmin(dm),
		Publication: publication,
		Scheduler:   newScheduler(publication, publishSpec, location),
		state:       state,
	}
}

// Init loads persisted publication state and seeds the built-in administrators
func (i *Instance) Init(ctx context.Context, builtInAdmins []string) error {
	if err := i.state.Load(); err != nil {
		return err
	}
	if err := i.Admin.Bootstrap(ctx, builtInAdmins); err != nil {
		return fmt.Errorf("failed to bootstrap admins: %w", err)
	}
	return nil
}
