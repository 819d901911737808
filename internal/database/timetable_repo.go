package database

import (
	"fmt"
	"log/slog"

	"github.com/diegoclair/slack-timetable-bot/internal/domain"
	"github.com/diegoclair/slack-timetable-bot/internal/domain/contract"
	"github.com/diegoclair/slack-timetable-bot/internal/domain/entity"
)

type timetableRepo struct {
	db dbConn
}

func newTimetableRepo(db dbConn) contract.TimetableRepo {
	return &timetableRepo{db: db}
}

// GetByGroupID rebuilds the timetable from its stored slots. Rows that do not
// fit the day kind are skipped and resolve as unconfigured.
func (r *timetableRepo) GetByGroupID(groupID int64) (*entity.Timetable, error) {
	query := `
		SELECT day, parity, content
		FROM timetable_entries
		WHERE group_id = ?
		ORDER BY day, parity
	`

	rows, err := r.db.Query(query, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to get timetable: %w", err)
	}
	defer rows.Close()

	timetable := entity.NewTimetable(groupID)
	for rows.Next() {
		var (
			day     int
			parity  string
			content string
		)
		if err := rows.Scan(&day, &parity, &content); err != nil {
			return nil, fmt.Errorf("failed to scan timetable entry: %w", err)
		}

		if err := timetable.SetEntry(domain.Day(day), domain.Parity(parity), content); err != nil {
			slog.Warn("Skipping malformed timetable entry", "group_id", groupID, "day", day, "parity", parity, "error", err)
		}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate timetable entries: %w", err)
	}

	return timetable, nil
}

func (r *timetableRepo) Upsert(groupID int64, day domain.Day, parity domain.Parity, content string) error {
	query := `
		INSERT INTO timetable_entries (group_id, day, parity, content, updated_at)
		VALUES (?, ?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT (group_id, day, parity) DO UPDATE SET
			content = excluded.content,
			updated_at = excluded.updated_at
	`

	_, err := r.db.Exec(query, groupID, int(day), string(parity), content)
	if err != nil {
		return fmt.Errorf("failed to save timetable entry: %w", err)
	}

	return nil
}

func (r *timetableRepo) Clear(groupID int64) error {
	query := `DELETE FROM timetable_entries WHERE group_id = ?`

	_, err := r.db.Exec(query, groupID)
	if err != nil {
		return fmt.Errorf("failed to clear timetable: %w", err)
	}

	return nil
}
