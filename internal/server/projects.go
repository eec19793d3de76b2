package server

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/ganttlabs/ganttlog/internal/calendar"
	apperrors "github.com/ganttlabs/ganttlog/internal/errors"
	"github.com/ganttlabs/ganttlog/internal/models"
	"github.com/ganttlabs/ganttlog/internal/validation"
)

func validateProjectRequest(req ProjectRequest) error {
	if err := validation.Required("name", req.Name); err != nil {
		return err
	}
	if err := validation.DayKey("start_date", req.StartDate); err != nil {
		return err
	}
	if err := validation.DayKey("end_date", req.EndDate); err != nil {
		return err
	}
	return validation.Color(req.Color)
}

// handleListProjects returns all projects owned by the current user, newest
// first.
func (s *Server) handleListProjects(c echo.Context) error {
	projects, err := s.store.GetAllProjects(currentUser(c).ID)
	if err != nil {
		return err
	}
	if projects == nil {
		projects = []models.Project{}
	}
	return c.JSON(http.StatusOK, projects)
}

func (s *Server) handleCreateProject(c echo.Context) error {
	var req ProjectRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.Invalidf("malformed request body")
	}
	if err := validateProjectRequest(req); err != nil {
		return err
	}

	progress := 0
	if req.Progress != nil {
		progress = calendar.ClampProgress(*req.Progress)
	}

	now := time.Now()
	project := models.Project{
		ID:          uuid.NewString(),
		OwnerID:     currentUser(c).ID,
		Name:        req.Name,
		Description: req.Description,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Progress:    progress,
		Color:       req.Color,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.store.AddProject(project); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, project)
}

func (s *Server) handleGetProject(c echo.Context) error {
	project, err := s.store.GetProject(currentUser(c).ID, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, project)
}

func (s *Server) handleUpdateProject(c echo.Context) error {
	var req ProjectRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.Invalidf("malformed request body")
	}
	if err := validateProjectRequest(req); err != nil {
		return err
	}

	project, err := s.store.GetProject(currentUser(c).ID, c.Param("id"))
	if err != nil {
		return err
	}

	project.Name = req.Name
	project.Description = req.Description
	project.StartDate = req.StartDate
	project.EndDate = req.EndDate
	if req.Progress != nil {
		project.Progress = calendar.ClampProgress(*req.Progress)
	}
	project.Color = req.Color
	project.UpdatedAt = time.Now()

	if err := s.store.UpdateProject(project); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, project)
}

func (s *Server) handleDeleteProject(c echo.Context) error {
	if err := s.store.DeleteProject(currentUser(c).ID, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
