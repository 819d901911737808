package database

import (
	"context"
	"fmt"

	"github.com/diegoclair/slack-timetable-bot/internal/domain/contract"
)

// instance implements DataManager interface
type instance struct {
	db              *DB
	groupRepo       contract.GroupRepo
	timetableRepo   contract.TimetableRepo
	adminRepo       contract.AdminRepo
	publicationRepo contract.PublicationRepo
}

// NewInstance creates a new database instance with all repositories
func NewInstance(db *DB) contract.DataManager {
	instance := repoInstancesWithConn(db.conn)
	instance.db = db
	return instance
}

// repoInstancesWithConn creates repository instances with custom dbConn
func repoInstancesWithConn(db dbConn) *instance {
	return &instance{
		groupRepo:       newGroupRepo(db),
		timetableRepo:   newTimetableRepo(db),
		adminRepo:       newAdminRepo(db),
		publicationRepo: newPublicationRepo(db),
	}
}

func (i *instance) Group() contract.GroupRepo {
	return i.groupRepo
}

func (i *instance) Timetable() contract.TimetableRepo {
	return i.timetableRepo
}

func (i *instance) Admin() contract.AdminRepo {
	return i.adminRepo
}

func (i *instance) Publication() contract.PublicationRepo {
	return i.publicationRepo
}

// WithTransaction executes a function within a database transaction.
// Nested calls reuse the outer transaction.
func (i *instance) WithTransaction(ctx context.Context, fn func(dm contract.DataManager) error) error {
	if i.db == nil {
		return fn(i)
	}

	tx, err := i.db.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	txInstance := repoInstancesWithConn(tx)
	err = fn(txInstance)
	if err != nil {
		rbErr := tx.Rollback()
		if rbErr != nil {
			return fmt.Errorf("error rolling back transaction: %v, original error: %w", rbErr, err)
		}
		return err
	}

	return tx.Commit()
}
