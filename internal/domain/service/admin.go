package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/diegoclair/slack-timetable-bot/internal/domain"
	"github.com/diegoclair/slack-timetable-bot/internal/domain/contract"
	"github.com/diegoclair/slack-timetable-bot/internal/domain/entity"
)

// adminService is the global administrator allow-list
type adminService struct {
	dm contract.DataManager
}

func newAdmin(dm contract.DataManager) *adminService {
	return &adminService{dm: dm}
}

// Bootstrap merges the built-in administrators into the persisted set.
// Persisted administrators are never dropped.
func (s *adminService) Bootstrap(ctx context.Context, builtIn []string) error {
	return s.dm.WithTransaction(ctx, func(tx contract.DataManager) error {
		for _, id := range builtIn {
			id = strings.TrimSpace(id)
			if id == "" {
				continue
			}
			if err := tx.Admin().Add(id); err != nil {
				return fmt.Errorf("failed to seed admin %s: %w", id, err)
			}
		}
		return nil
	})
}

func (s *adminService) IsAdmin(slackUserID string) (bool, error) {
	if slackUserID == "" {
		return false, nil
	}
	return s.dm.Admin().Exists(slackUserID)
}

func (s *adminService) requireAdmin(callerID string) error {
	ok, err := s.IsAdmin(callerID)
	if err != nil {
		return fmt.Errorf("failed to check admin: %w", err)
	}
	if !ok {
		return domain.ErrNotAdmin
	}
	return nil
}

func (s *adminService) Add(callerID, slackUserID string) error {
	if err := s.requireAdmin(callerID); err != nil {
		return err
	}
	if slackUserID == "" {
		return &domain.ValidationError{Field: "user", Err: domain.ErrInvalidUserID}
	}

	if err := s.dm.Admin().Add(slackUserID); err != nil {
		return err
	}

	slog.Info("Admin added", "admin", slackUserID, "by", callerID)
	return nil
}

// Remove drops an administrator. Callers cannot remove themselves; removing
// the last remaining administrator other than the caller is allowed.
func (s *adminService) Remove(callerID, slackUserID string) error {
	if err := s.requireAdmin(callerID); err != nil {
		return err
	}
	if slackUserID == "" {
		return &domain.ValidationError{Field: "user", Err: domain.ErrInvalidUserID}
	}
	if slackUserID == callerID {
		return domain.ErrSelfRemoval
	}

	exists, err := s.dm.Admin().Exists(slackUserID)
	if err != nil {
		return fmt.Errorf("failed to check admin: %w", err)
	}
	if !exists {
		return domain.ErrAdminNotFound
	}

	if err := s.dm.Admin().Remove(slackUserID); err != nil {
		return err
	}

	slog.Info("Admin removed", "admin", slackUserID, "by", callerID)
	return nil
}

func (s *adminService) List(callerID string) ([]*entity.Admin, error) {
	if err := s.requireAdmin(callerID); err != nil {
		return nil, err
	}
	return s.dm.Admin().List()
}
