package server

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ganttlabs/ganttlog/internal/calendar"
	apperrors "github.com/ganttlabs/ganttlog/internal/errors"
)

// handleCalendar renders the calendar-and-gantt view model for the requested
// window.
//
//	GET /api/calendar?anchor=2024-03-15&view=quarter
//
// anchor defaults to today, view to month.
func (s *Server) handleCalendar(c echo.Context) error {
	now := time.Now()

	anchor := now
	if raw := c.QueryParam("anchor"); raw != "" {
		parsed, err := calendar.ParseDayKey(raw)
		if err != nil {
			return apperrors.Invalidf("anchor %q is not a valid date (want YYYY-MM-DD)", raw)
		}
		anchor = parsed
	}

	g := calendar.ViewMonth
	if raw := c.QueryParam("view"); raw != "" {
		g = calendar.Granularity(raw)
		if !g.Valid() {
			return apperrors.Invalidf("view %q is not one of month, quarter, year", raw)
		}
	}

	user := currentUser(c)
	projects, err := s.store.GetAllProjects(user.ID)
	if err != nil {
		return err
	}
	entries, err := s.store.GetAllEntries(user.ID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, calendar.BuildView(anchor, now, g, projects, entries, nil))
}
