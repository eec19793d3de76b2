package sqlite

import (
	"github.com/ganttlabs/ganttlog/internal/models"
)

const eventColumns = `id, project_id, date, title, color, note, created_at`

func (s *Store) AddEvent(e models.ProjectEvent) error {
	_, err := s.db.Exec(`
		INSERT INTO project_events (`+eventColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.ProjectID, e.Date, e.Title, e.Color, e.Note, formatTime(e.CreatedAt))
	return mapErr(err)
}

func (s *Store) GetEvent(projectID, id string) (models.ProjectEvent, error) {
	row := s.db.QueryRow(`
		SELECT `+eventColumns+`
		FROM project_events WHERE id = ? AND project_id = ?`, id, projectID)

	var e models.ProjectEvent
	var createdAt string
	err := row.Scan(&e.ID, &e.ProjectID, &e.Date, &e.Title, &e.Color, &e.Note, &createdAt)
	if err != nil {
		return models.ProjectEvent{}, mapErr(err)
	}
	e.CreatedAt = parseTime(createdAt)
	return e, nil
}

func (s *Store) GetEventsForProject(projectID string) ([]models.ProjectEvent, error) {
	rows, err := s.db.Query(`
		SELECT `+eventColumns+`
		FROM project_events WHERE project_id = ?
		ORDER BY date, created_at`, projectID)
	if err != nil {
		return nil, mapErr(err)
	}
	defer rows.Close()

	var events []models.ProjectEvent
	for rows.Next() {
		var e models.ProjectEvent
		var createdAt string
		if err := rows.Scan(&e.ID, &e.ProjectID, &e.Date, &e.Title, &e.Color, &e.Note, &createdAt); err != nil {
			return nil, err
		}
		e.CreatedAt = parseTime(createdAt)
		events = append(events, e)
	}
	return events, rows.Err()
}

func (s *Store) UpdateEvent(e models.ProjectEvent) error {
	res, err := s.db.Exec(`
		UPDATE project_events
		SET date = ?, title = ?, color = ?, note = ?
		WHERE id = ? AND project_id = ?`,
		e.Date, e.Title, e.Color, e.Note, e.ID, e.ProjectID)
	if err != nil {
		return mapErr(err)
	}
	return requireAffected(res)
}

func (s *Store) DeleteEvent(projectID, id string) error {
	res, err := s.db.Exec(`DELETE FROM project_events WHERE id = ? AND project_id = ?`, id, projectID)
	if err != nil {
		return mapErr(err)
	}
	return requireAffected(res)
}
