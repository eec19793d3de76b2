package sqlite

import (
	"github.com/ganttlabs/ganttlog/internal/models"
)

const entryColumns = `id, owner_id, date, mood, work_content, journal, created_at, updated_at`

// UpsertEntry inserts the day's entry or, if one already exists for the
// owner and date, overwrites its mood, work content and journal. The stored
// row (with its original id and created_at) is returned.
func (s *Store) UpsertEntry(e models.DailyEntry) (models.DailyEntry, error) {
	_, err := s.db.Exec(`
		INSERT INTO daily_entries (`+entryColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (owner_id, date) DO UPDATE
		SET mood = excluded.mood,
		    work_content = excluded.work_content,
		    journal = excluded.journal,
		    updated_at = excluded.updated_at`,
		e.ID, e.OwnerID, e.Date, e.Mood, e.WorkContent, e.Journal,
		formatTime(e.CreatedAt), formatTime(e.UpdatedAt))
	if err != nil {
		return models.DailyEntry{}, mapErr(err)
	}
	return s.GetEntry(e.OwnerID, e.Date)
}

func (s *Store) GetEntry(ownerID, date string) (models.DailyEntry, error) {
	row := s.db.QueryRow(`
		SELECT `+entryColumns+`
		FROM daily_entries WHERE owner_id = ? AND date = ?`, ownerID, date)

	var e models.DailyEntry
	var createdAt, updatedAt string
	err := row.Scan(&e.ID, &e.OwnerID, &e.Date, &e.Mood, &e.WorkContent, &e.Journal, &createdAt, &updatedAt)
	if err != nil {
		return models.DailyEntry{}, mapErr(err)
	}
	e.CreatedAt = parseTime(createdAt)
	e.UpdatedAt = parseTime(updatedAt)
	return e, nil
}

// GetAllEntries returns the owner's entries, newest day first.
func (s *Store) GetAllEntries(ownerID string) ([]models.DailyEntry, error) {
	rows, err := s.db.Query(`
		SELECT `+entryColumns+`
		FROM daily_entries WHERE owner_id = ?
		ORDER BY date DESC`, ownerID)
	if err != nil {
		return nil, mapErr(err)
	}
	defer rows.Close()

	var entries []models.DailyEntry
	for rows.Next() {
		var e models.DailyEntry
		var createdAt, updatedAt string
		if err := rows.Scan(&e.ID, &e.OwnerID, &e.Date, &e.Mood, &e.WorkContent, &e.Journal, &createdAt, &updatedAt); err != nil {
			return nil, err
		}
		e.CreatedAt = parseTime(createdAt)
		e.UpdatedAt = parseTime(updatedAt)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (s *Store) DeleteEntry(ownerID, date string) error {
	res, err := s.db.Exec(`DELETE FROM daily_entries WHERE owner_id = ? AND date = ?`, ownerID, date)
	if err != nil {
		return mapErr(err)
	}
	return requireAffected(res)
}
