package server

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	apperrors "github.com/ganttlabs/ganttlog/internal/errors"
	"github.com/ganttlabs/ganttlog/internal/models"
	"github.com/ganttlabs/ganttlog/internal/validation"
)

// ownedProject gates event access: the project must exist and belong to the
// current user, otherwise 404.
func (s *Server) ownedProject(c echo.Context) (models.Project, error) {
	return s.store.GetProject(currentUser(c).ID, c.Param("id"))
}

func validateEventRequest(req EventRequest) error {
	if err := validation.DayKey("date", req.Date); err != nil {
		return err
	}
	if err := validation.Required("title", req.Title); err != nil {
		return err
	}
	return validation.Color(req.Color)
}

// handleListEvents returns a project's events in date order. Multiple events
// may share a date.
func (s *Server) handleListEvents(c echo.Context) error {
	project, err := s.ownedProject(c)
	if err != nil {
		return err
	}
	events, err := s.store.GetEventsForProject(project.ID)
	if err != nil {
		return err
	}
	if events == nil {
		events = []models.ProjectEvent{}
	}
	return c.JSON(http.StatusOK, events)
}

func (s *Server) handleCreateEvent(c echo.Context) error {
	project, err := s.ownedProject(c)
	if err != nil {
		return err
	}

	var req EventRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.Invalidf("malformed request body")
	}
	if err := validateEventRequest(req); err != nil {
		return err
	}

	event := models.ProjectEvent{
		ID:        uuid.NewString(),
		ProjectID: project.ID,
		Date:      req.Date,
		Title:     req.Title,
		Color:     req.Color,
		Note:      req.Note,
		CreatedAt: time.Now(),
	}
	if err := s.store.AddEvent(event); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, event)
}

func (s *Server) handleUpdateEvent(c echo.Context) error {
	project, err := s.ownedProject(c)
	if err != nil {
		return err
	}

	var req EventRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.Invalidf("malformed request body")
	}
	if err := validateEventRequest(req); err != nil {
		return err
	}

	event, err := s.store.GetEvent(project.ID, c.Param("eventID"))
	if err != nil {
		return err
	}

	event.Date = req.Date
	event.Title = req.Title
	event.Color = req.Color
	event.Note = req.Note

	if err := s.store.UpdateEvent(event); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, event)
}

func (s *Server) handleDeleteEvent(c echo.Context) error {
	project, err := s.ownedProject(c)
	if err != nil {
		return err
	}
	if err := s.store.DeleteEvent(project.ID, c.Param("eventID")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
