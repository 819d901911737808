package service

import (
	"context"
	"testing"

	"github.com/diegoclair/slack-timetable-bot/internal/domain/contract"
	"github.com/diegoclair/slack-timetable-bot/mocks"
	"go.uber.org/mock/gomock"
)

type allMocks struct {
	mockDataManager     *mocks.MockDataManager
	mockGroupRepo       *mocks.MockGroupRepo
	mockTimetableRepo   *mocks.MockTimetableRepo
	mockAdminRepo       *mocks.MockAdminRepo
	mockPublicationRepo *mocks.MockPublicationRepo
	mockMessenger       *mocks.MockMessenger
}

func newServiceTestMock(t *testing.T) (m allMocks, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)

	dm := mocks.NewMockDataManager(ctrl)

	groupRepo := mocks.NewMockGroupRepo(ctrl)
	dm.EXPECT().Group().Return(groupRepo).AnyTimes()

	timetableRepo := mocks.NewMockTimetableRepo(ctrl)
	dm.EXPECT().Timetable().Return(timetableRepo).AnyTimes()

	adminRepo := mocks.NewMockAdminRepo(ctrl)
	dm.EXPECT().Admin().Return(adminRepo).AnyTimes()

	publicationRepo := mocks.NewMockPublicationRepo(ctrl)
	dm.EXPECT().Publication().Return(publicationRepo).AnyTimes()

	// transactions run inline against the same mocks
	dm.EXPECT().WithTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(contract.DataManager) error) error {
			return fn(dm)
		}).AnyTimes()

	m = allMocks{
		mockDataManager:     dm,
		mockGroupRepo:       groupRepo,
		mockTimetableRepo:   timetableRepo,
		mockAdminRepo:       adminRepo,
		mockPublicationRepo: publicationRepo,
		mockMessenger:       mocks.NewMockMessenger(ctrl),
	}

	return
}
