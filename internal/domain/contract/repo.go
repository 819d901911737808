package contract

//go:generate mockgen -source=repo.go -destination=../../../mocks/repo_mock.go -package=mocks

import (
	"context"
	"time"

	"github.com/diegoclair/slack-timetable-bot/internal/domain"
	"github.com/diegoclair/slack-timetable-bot/internal/domain/entity"
)

// DataManager aggregates all repository interfaces
type DataManager interface {
	WithTransaction(ctx context.Context, fn func(dm DataManager) error) error
	Group() GroupRepo
	Timetable() TimetableRepo
	Admin() AdminRepo
	Publication() PublicationRepo
}

// GroupRepo defines the contract for group repository
type GroupRepo interface {
	Create(group *entity.Group) error
	GetBySlackID(slackChannelID string) (*entity.Group, error)
	GetByID(id int64) (*entity.Group, error)
	GetAll() ([]*entity.Group, error)
	UpdateEpoch(id int64, epoch time.Time) error
}

// TimetableRepo defines the contract for timetable repository
type TimetableRepo interface {
	GetByGroupID(groupID int64) (*entity.Timetable, error)
	Upsert(groupID int64, day domain.Day, parity domain.Parity, content string) error
	Clear(groupID int64) error
}

// AdminRepo defines the contract for admin repository
type AdminRepo interface {
	Add(slackUserID string) error
	Remove(slackUserID string) error
	Exists(slackUserID string) (bool, error)
	List() ([]*entity.Admin, error)
}

// PublicationRepo defines the contract for pinned publication repository
type PublicationRepo interface {
	GetAll() ([]*entity.Publication, error)
	Set(publication *entity.Publication) error
	Delete(groupID int64) error
}
