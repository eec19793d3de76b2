package server

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ganttlabs/ganttlog/internal/constants"
	apperrors "github.com/ganttlabs/ganttlog/internal/errors"
	"github.com/ganttlabs/ganttlog/internal/models"
)

// userContextKey is where requireSession stashes the authenticated user.
const userContextKey = "ganttlog.user"

// requireSession resolves the session cookie to a user and rejects the request
// with 401 otherwise. Expired sessions are deleted on sight.
func (s *Server) requireSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		cookie, err := c.Cookie(constants.SessionCookie)
		if err != nil || cookie.Value == "" {
			return apperrors.ErrUnauthorized
		}

		session, err := s.store.GetSession(cookie.Value)
		if err != nil {
			return apperrors.ErrUnauthorized
		}
		if session.Expired(time.Now()) {
			_ = s.store.DeleteSession(session.Token)
			return apperrors.ErrUnauthorized
		}

		user, err := s.store.GetUser(session.UserID)
		if err != nil {
			return apperrors.ErrUnauthorized
		}

		c.Set(userContextKey, user)
		return next(c)
	}
}

// currentUser returns the user requireSession attached to the request.
func currentUser(c echo.Context) models.User {
	user, _ := c.Get(userContextKey).(models.User)
	return user
}

func (s *Server) setSessionCookie(c echo.Context, session models.Session) {
	c.SetCookie(&http.Cookie{
		Name:     constants.SessionCookie,
		Value:    session.Token,
		Path:     "/",
		Expires:  session.ExpiresAt,
		HttpOnly: true,
		Secure:   s.config.Auth.SecureCookie,
		SameSite: http.SameSiteLaxMode,
	})
}

func (s *Server) clearSessionCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     constants.SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.config.Auth.SecureCookie,
		SameSite: http.SameSiteLaxMode,
	})
}
