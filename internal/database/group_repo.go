package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/diegoclair/slack-timetable-bot/internal/domain"
	"github.com/diegoclair/slack-timetable-bot/internal/domain/contract"
	"github.com/diegoclair/slack-timetable-bot/internal/domain/entity"
)

type groupRepo struct {
	db dbConn
}

func newGroupRepo(db dbConn) contract.GroupRepo {
	return &groupRepo{db: db}
}

const groupColumns = `id, slack_channel_id, slack_channel_name, slack_team_id, epoch, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanGroup(row rowScanner) (*entity.Group, error) {
	group := &entity.Group{}
	var epoch string
	err := row.Scan(
		&group.ID,
		&group.SlackChannelID,
		&group.SlackChannelName,
		&group.SlackTeamID,
		&epoch,
		&group.CreatedAt,
		&group.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	group.Epoch, err = time.Parse(domain.DateLayout, epoch)
	if err != nil {
		return nil, fmt.Errorf("invalid epoch %q for group %d: %w", epoch, group.ID, err)
	}
	return group, nil
}

func (r *groupRepo) Create(group *entity.Group) error {
	query := `
		INSERT INTO groups (slack_channel_id, slack_channel_name, slack_team_id, epoch)
		VALUES (?, ?, ?, ?)
	`

	result, err := r.db.Exec(query,
		group.SlackChannelID,
		group.SlackChannelName,
		group.SlackTeamID,
		group.Epoch.Format(domain.DateLayout),
	)
	if err != nil {
		return fmt.Errorf("failed to create group: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	group.ID = id
	return nil
}

func (r *groupRepo) GetBySlackID(slackChannelID string) (*entity.Group, error) {
	query := `SELECT ` + groupColumns + ` FROM groups WHERE slack_channel_id = ?`

	group, err := scanGroup(r.db.QueryRow(query, slackChannelID))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get group: %w", err)
	}

	return group, nil
}

func (r *groupRepo) GetByID(id int64) (*entity.Group, error) {
	query := `SELECT ` + groupColumns + ` FROM groups WHERE id = ?`

	group, err := scanGroup(r.db.QueryRow(query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get group: %w", err)
	}

	return group, nil
}

func (r *groupRepo) GetAll() ([]*entity.Group, error) {
	query := `SELECT ` + groupColumns + ` FROM groups ORDER BY id`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to get groups: %w", err)
	}
	defer rows.Close()

	var groups []*entity.Group
	for rows.Next() {
		group, err := scanGroup(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan group: %w", err)
		}
		groups = append(groups, group)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate groups: %w", err)
	}

	return groups, nil
}

func (r *groupRepo) UpdateEpoch(id int64, epoch time.Time) error {
	query := `
		UPDATE groups SET
			epoch = ?,
			updated_at = ?
		WHERE id = ?
	`

	result, err := r.db.Exec(query, epoch.Format(domain.DateLayout), time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to update epoch: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if affected == 0 {
		return domain.ErrGroupNotFound
	}

	return nil
}
