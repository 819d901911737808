package service

import (
	"context"
	"testing"
	"time"

	"github.com/diegoclair/slack-timetable-bot/internal/domain/contract"
	"github.com/diegoclair/slack-timetable-bot/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func Test_scheduler_StartInvalidSpec(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := newScheduler(mocks.NewMockPublicationService(ctrl), "every morning", time.UTC)
	err := s.Start()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "every morning")
	assert.False(t, s.running)
}

func Test_scheduler_StartStop(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := newScheduler(mocks.NewMockPublicationService(ctrl), "0 7 * * *", time.UTC)
	assert.True(t, s.Next().IsZero())

	require.NoError(t, s.Start())
	defer s.Stop()

	next := s.Next()
	require.False(t, next.IsZero())
	assert.Equal(t, 7, next.Hour())
	assert.Equal(t, 0, next.Minute())

	// starting twice keeps a single entry
	require.NoError(t, s.Start())
	assert.Len(t, s.cron.Entries(), 1)
}

func Test_scheduler_run(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	loc := time.FixedZone("UTC+3", 3*60*60)
	publisher := mocks.NewMockPublicationService(ctrl)
	publisher.EXPECT().
		PublishAll(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, now time.Time) []contract.PublishResult {
			assert.Equal(t, loc, now.Location())
			return []contract.PublishResult{
				{GroupID: 1, Outcome: contract.OutcomePublished},
				{GroupID: 2, Outcome: contract.OutcomeSendFailed, Err: assert.AnError},
			}
		}).Times(1)

	s := newScheduler(publisher, "0 7 * * *", loc)
	s.run()
}
