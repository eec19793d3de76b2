package sqlite

import (
	"github.com/ganttlabs/ganttlog/internal/models"
)

func (s *Store) CreateUser(user models.User) error {
	_, err := s.db.Exec(`
		INSERT INTO users (id, name, email, password_hash, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		user.ID, user.Name, user.Email, user.PasswordHash, formatTime(user.CreatedAt))
	return mapErr(err)
}

func (s *Store) GetUser(id string) (models.User, error) {
	return s.scanUser(`SELECT id, name, email, password_hash, created_at FROM users WHERE id = ?`, id)
}

func (s *Store) GetUserByEmail(email string) (models.User, error) {
	return s.scanUser(`SELECT id, name, email, password_hash, created_at FROM users WHERE email = ?`, email)
}

func (s *Store) scanUser(query string, arg string) (models.User, error) {
	var u models.User
	var createdAt string

	err := s.db.QueryRow(query, arg).Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &createdAt)
	if err != nil {
		return models.User{}, mapErr(err)
	}
	u.CreatedAt = parseTime(createdAt)
	return u, nil
}
