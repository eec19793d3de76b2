package sqlite

import (
	"time"

	"github.com/ganttlabs/ganttlog/internal/models"
)

func (s *Store) CreateSession(session models.Session) error {
	_, err := s.db.Exec(`
		INSERT INTO sessions (token, user_id, created_at, expires_at)
		VALUES (?, ?, ?, ?)`,
		session.Token, session.UserID, formatTime(session.CreatedAt), formatTime(session.ExpiresAt))
	return mapErr(err)
}

func (s *Store) GetSession(token string) (models.Session, error) {
	var sess models.Session
	var createdAt, expiresAt string

	err := s.db.QueryRow(`
		SELECT token, user_id, created_at, expires_at
		FROM sessions WHERE token = ?`, token).
		Scan(&sess.Token, &sess.UserID, &createdAt, &expiresAt)
	if err != nil {
		return models.Session{}, mapErr(err)
	}
	sess.CreatedAt = parseTime(createdAt)
	sess.ExpiresAt = parseTime(expiresAt)
	return sess, nil
}

func (s *Store) DeleteSession(token string) error {
	_, err := s.db.Exec(`DELETE FROM sessions WHERE token = ?`, token)
	return mapErr(err)
}

// DeleteExpiredSessions removes sessions past their expiry and returns how
// many were dropped.
func (s *Store) DeleteExpiredSessions(now time.Time) (int, error) {
	res, err := s.db.Exec(`DELETE FROM sessions WHERE expires_at <= ?`, formatTime(now))
	if err != nil {
		return 0, mapErr(err)
	}
	n, err := res.RowsAffected()
	return int(n), err
}
