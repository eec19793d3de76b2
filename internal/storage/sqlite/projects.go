package sqlite

import (
	"github.com/ganttlabs/ganttlog/internal/models"
)

const projectColumns = `id, owner_id, name, description, start_date, end_date, progress, color, created_at, updated_at`

func (s *Store) AddProject(p models.Project) error {
	_, err := s.db.Exec(`
		INSERT INTO projects (`+projectColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.OwnerID, p.Name, p.Description, p.StartDate, p.EndDate,
		p.Progress, p.Color, formatTime(p.CreatedAt), formatTime(p.UpdatedAt))
	return mapErr(err)
}

func (s *Store) GetProject(ownerID, id string) (models.Project, error) {
	row := s.db.QueryRow(`
		SELECT `+projectColumns+`
		FROM projects WHERE id = ? AND owner_id = ?`, id, ownerID)

	var p models.Project
	var createdAt, updatedAt string
	err := row.Scan(&p.ID, &p.OwnerID, &p.Name, &p.Description, &p.StartDate, &p.EndDate,
		&p.Progress, &p.Color, &createdAt, &updatedAt)
	if err != nil {
		return models.Project{}, mapErr(err)
	}
	p.CreatedAt = parseTime(createdAt)
	p.UpdatedAt = parseTime(updatedAt)
	return p, nil
}

// GetAllProjects returns the owner's projects, newest first, matching the
// order the dashboard lists them in.
func (s *Store) GetAllProjects(ownerID string) ([]models.Project, error) {
	rows, err := s.db.Query(`
		SELECT `+projectColumns+`
		FROM projects WHERE owner_id = ?
		ORDER BY created_at DESC, id`, ownerID)
	if err != nil {
		return nil, mapErr(err)
	}
	defer rows.Close()

	var projects []models.Project
	for rows.Next() {
		var p models.Project
		var createdAt, updatedAt string
		err := rows.Scan(&p.ID, &p.OwnerID, &p.Name, &p.Description, &p.StartDate, &p.EndDate,
			&p.Progress, &p.Color, &createdAt, &updatedAt)
		if err != nil {
			return nil, err
		}
		p.CreatedAt = parseTime(createdAt)
		p.UpdatedAt = parseTime(updatedAt)
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

func (s *Store) UpdateProject(p models.Project) error {
	res, err := s.db.Exec(`
		UPDATE projects
		SET name = ?, description = ?, start_date = ?, end_date = ?, progress = ?, color = ?, updated_at = ?
		WHERE id = ? AND owner_id = ?`,
		p.Name, p.Description, p.StartDate, p.EndDate, p.Progress, p.Color,
		formatTime(p.UpdatedAt), p.ID, p.OwnerID)
	if err != nil {
		return mapErr(err)
	}
	return requireAffected(res)
}

func (s *Store) DeleteProject(ownerID, id string) error {
	res, err := s.db.Exec(`DELETE FROM projects WHERE id = ? AND owner_id = ?`, id, ownerID)
	if err != nil {
		return mapErr(err)
	}
	return requireAffected(res)
}
