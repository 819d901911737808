package database

import (
	"fmt"

	"github.com/diegoclair/slack-timetable-bot/internal/domain/contract"
	"github.com/diegoclair/slack-timetable-bot/internal/domain/entity"
)

type adminRepo struct {
	db dbConn
}

func newAdminRepo(db dbConn) contract.AdminRepo {
	return &adminRepo{db: db}
}

func (r *adminRepo) Add(slackUserID string) error {
	query := `INSERT OR IGNORE INTO admins (slack_user_id) VALUES (?)`

	if _, err := r.db.Exec(query, slackUserID); err != nil {
		return fmt.Errorf("failed to add admin: %w", err)
	}

	return nil
}

func (r *adminRepo) Remove(slackUserID string) error {
	query := `DELETE FROM admins WHERE slack_user_id = ?`

	if _, err := r.db.Exec(query, slackUserID); err != nil {
		return fmt.Errorf("failed to remove admin: %w", err)
	}

	return nil
}

func (r *adminRepo) Exists(slackUserID string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM admins WHERE slack_user_id = ?)`

	var exists bool
	if err := r.db.QueryRow(query, slackUserID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check admin: %w", err)
	}

	return exists, nil
}

func (r *adminRepo) List() ([]*entity.Admin, error) {
	query := `
		SELECT slack_user_id, created_at
		FROM admins
		ORDER BY created_at, slack_user_id
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list admins: %w", err)
	}
	defer rows.Close()

	var admins []*entity.Admin
	for rows.Next() {
		admin := &entity.Admin{}
		if err := rows.Scan(&admin.SlackUserID, &admin.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan admin: %w", err)
		}
		admins = append(admins, admin)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate admins: %w", err)
	}

	return admins, nil
}
