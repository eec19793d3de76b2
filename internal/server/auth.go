package server

import (
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/ganttlabs/ganttlog/internal/auth"
	"github.com/ganttlabs/ganttlog/internal/constants"
	apperrors "github.com/ganttlabs/ganttlog/internal/errors"
	"github.com/ganttlabs/ganttlog/internal/logger"
	"github.com/ganttlabs/ganttlog/internal/models"
	"github.com/ganttlabs/ganttlog/internal/validation"
)

// handleRegister creates a new user account.
func (s *Server) handleRegister(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.Invalidf("malformed request body")
	}

	if err := validation.Required("name", req.Name); err != nil {
		return err
	}
	if err := validation.Email(req.Email); err != nil {
		return err
	}
	if err := validation.Password(req.Password); err != nil {
		return err
	}

	hash, err := auth.HashPassword(req.Password, s.config.Auth.BcryptCost)
	if err != nil {
		return err
	}

	user := models.User{
		ID:           uuid.NewString(),
		Name:         strings.TrimSpace(req.Name),
		Email:        strings.TrimSpace(req.Email),
		PasswordHash: hash,
		CreatedAt:    time.Now(),
	}
	if err := s.store.CreateUser(user); err != nil {
		return err
	}

	logger.Info("user registered", "user_id", user.ID)
	return c.JSON(http.StatusCreated, userResponse(user))
}

// handleLogin verifies credentials and issues a session cookie. Bad email and
// bad password fail identically so the endpoint leaks nothing about accounts.
func (s *Server) handleLogin(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.Invalidf("malformed request body")
	}

	user, err := s.store.GetUserByEmail(strings.TrimSpace(req.Email))
	if err != nil || !auth.CheckPassword(user.PasswordHash, req.Password) {
		return apperrors.ErrUnauthorized
	}

	token, err := auth.NewToken()
	if err != nil {
		return err
	}
	now := time.Now()
	session := models.Session{
		Token:     token,
		UserID:    user.ID,
		CreatedAt: now,
		ExpiresAt: now.Add(s.sessionTTL()),
	}
	if err := s.store.CreateSession(session); err != nil {
		return err
	}

	s.setSessionCookie(c, session)
	logger.Info("user logged in", "user_id", user.ID)
	return c.JSON(http.StatusOK, userResponse(user))
}

// handleLogout deletes the current session, if any, and clears the cookie.
// Always succeeds; logging out twice is not an error.
func (s *Server) handleLogout(c echo.Context) error {
	if cookie, err := c.Cookie(constants.SessionCookie); err == nil && cookie.Value != "" {
		_ = s.store.DeleteSession(cookie.Value)
	}
	s.clearSessionCookie(c)
	return c.NoContent(http.StatusNoContent)
}

// handleMe returns the authenticated user.
func (s *Server) handleMe(c echo.Context) error {
	return c.JSON(http.StatusOK, userResponse(currentUser(c)))
}

func (s *Server) sessionTTL() time.Duration {
	if s.config.Auth.SessionTTL > 0 {
		return s.config.Auth.SessionTTL
	}
	return constants.DefaultSessionTTL
}
