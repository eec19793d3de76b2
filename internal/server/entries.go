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

func validateEntryRequest(req EntryRequest) error {
	if err := validation.DayKey("date", req.Date); err != nil {
		return err
	}
	if err := validation.MoodTag(req.Mood); err != nil {
		return err
	}
	return validation.Required("work_content", req.WorkContent)
}

// handleListEntries returns the current user's daily entries, newest first.
func (s *Server) handleListEntries(c echo.Context) error {
	entries, err := s.store.GetAllEntries(currentUser(c).ID)
	if err != nil {
		return err
	}
	if entries == nil {
		entries = []models.DailyEntry{}
	}
	return c.JSON(http.StatusOK, entries)
}

// handleUpsertEntry writes the entry for the date in the body. A second write
// on the same day replaces the first; at most one entry exists per day.
func (s *Server) handleUpsertEntry(c echo.Context) error {
	var req EntryRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.Invalidf("malformed request body")
	}
	if err := validateEntryRequest(req); err != nil {
		return err
	}

	entry, err := s.writeEntry(currentUser(c).ID, req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, entry)
}

func (s *Server) handleGetEntry(c echo.Context) error {
	date := c.Param("date")
	if err := validation.DayKey("date", date); err != nil {
		return err
	}
	entry, err := s.store.GetEntry(currentUser(c).ID, date)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, entry)
}

// handleUpdateEntry upserts the entry for the date in the path. The path date
// wins over any date in the body.
func (s *Server) handleUpdateEntry(c echo.Context) error {
	var req EntryRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.Invalidf("malformed request body")
	}
	req.Date = c.Param("date")
	if err := validateEntryRequest(req); err != nil {
		return err
	}

	entry, err := s.writeEntry(currentUser(c).ID, req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, entry)
}

func (s *Server) handleDeleteEntry(c echo.Context) error {
	date := c.Param("date")
	if err := validation.DayKey("date", date); err != nil {
		return err
	}
	if err := s.store.DeleteEntry(currentUser(c).ID, date); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) writeEntry(ownerID string, req EntryRequest) (models.DailyEntry, error) {
	now := time.Now()
	return s.store.UpsertEntry(models.DailyEntry{
		ID:          uuid.NewString(),
		OwnerID:     ownerID,
		Date:        req.Date,
		Mood:        req.Mood,
		WorkContent: req.WorkContent,
		Journal:     req.Journal,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
}
