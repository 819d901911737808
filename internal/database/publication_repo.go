package database

import (
	"fmt"

	"github.com/diegoclair/slack-timetable-bot/internal/domain/contract"
	"github.com/diegoclair/slack-timetable-bot/internal/domain/entity"
)

type publicationRepo struct {
	db dbConn
}

func newPublicationRepo(db dbConn) contract.PublicationRepo {
	return &publicationRepo{db: db}
}

func (r *publicationRepo) GetAll() ([]*entity.Publication, error) {
	query := `SELECT group_id, message_ts, published_at FROM publications ORDER BY group_id`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to get publications: %w", err)
	}
	defer rows.Close()

	var publications []*entity.Publication
	for rows.Next() {
		p := &entity.Publication{}
		if err := rows.Scan(&p.GroupID, &p.MessageTS, &p.PublishedAt); err != nil {
			return nil, fmt.Errorf("failed to scan publication: %w", err)
		}
		publications = append(publications, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate publications: %w", err)
	}

	return publications, nil
}

func (r *publicationRepo) Set(publication *entity.Publication) error {
	query := `
		INSERT INTO publications (group_id, message_ts, published_at)
		VALUES (?, ?, ?)
		ON CONFLICT (group_id) DO UPDATE SET
			message_ts = excluded.message_ts,
			published_at = excluded.published_at
	`

	_, err := r.db.Exec(query, publication.GroupID, publication.MessageTS, publication.PublishedAt)
	if err != nil {
		return fmt.Errorf("failed to save publication: %w", err)
	}

	return nil
}

func (r *publicationRepo) Delete(groupID int64) error {
	query := `DELETE FROM publications WHERE group_id = ?`

	if _, err := r.db.Exec(query, groupID); err != nil {
		return fmt.Errorf("failed to delete publication: %w", err)
	}

	return nil
}
