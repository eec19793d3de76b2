// Package server provides the HTTP API for ganttlog.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/ganttlabs/ganttlog/internal/config"
	apperrors "github.com/ganttlabs/ganttlog/internal/errors"
	"github.com/ganttlabs/ganttlog/internal/logger"
	"github.com/ganttlabs/ganttlog/internal/storage"
)

// Server provides HTTP endpoints for ganttlog.
type Server struct {
	echo    *echo.Echo
	store   storage.Provider
	config  *config.Config
	metrics *httpMetrics
}

// NewServer creates a new HTTP server over the given store.
func NewServer(store storage.Provider, cfg *config.Config) (*Server, error) {
	if store == nil {
		return nil, fmt.Errorf("store cannot be nil")
	}
	if cfg == nil {
		cfg = config.Default()
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = errorHandler

	s := &Server{
		echo:    e,
		store:   store,
		config:  cfg,
		metrics: newHTTPMetrics(),
	}

	// Middleware
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			logger.Info("http request",
				"method", c.Request().Method,
				"uri", c.Request().RequestURI,
				"status", c.Response().Status,
				"duration", time.Since(start),
				"request_id", c.Response().Header().Get(echo.HeaderXRequestID),
			)
			return err
		}
	})
	e.Use(s.metrics.middleware())

	s.registerRoutes()

	return s, nil
}

// registerRoutes sets up the HTTP endpoints.
func (s *Server) registerRoutes() {
	s.echo.GET("/health", s.handleHealth)
	s.echo.GET("/metrics", s.metrics.handler())

	api := s.echo.Group("/api")
	api.POST("/register", s.handleRegister)
	api.POST("/login", s.handleLogin)
	api.POST("/logout", s.handleLogout)

	authed := api.Group("", s.requireSession)
	authed.GET("/me", s.handleMe)

	authed.GET("/projects", s.handleListProjects)
	authed.POST("/projects", s.handleCreateProject)
	authed.GET("/projects/:id", s.handleGetProject)
	authed.PUT("/projects/:id", s.handleUpdateProject)
	authed.DELETE("/projects/:id", s.handleDeleteProject)

	authed.GET("/projects/:id/events", s.handleListEvents)
	authed.POST("/projects/:id/events", s.handleCreateEvent)
	authed.PUT("/projects/:id/events/:eventID", s.handleUpdateEvent)
	authed.DELETE("/projects/:id/events/:eventID", s.handleDeleteEvent)

	authed.GET("/daily-entries", s.handleListEntries)
	authed.POST("/daily-entries", s.handleUpsertEntry)
	authed.GET("/daily-entries/:date", s.handleGetEntry)
	authed.PUT("/daily-entries/:date", s.handleUpdateEntry)
	authed.DELETE("/daily-entries/:date", s.handleDeleteEntry)

	authed.GET("/calendar", s.handleCalendar)
}

// errorHandler renders every error as the JSON envelope, mapping domain
// sentinels to their status codes.
func errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := apperrors.HTTPStatus(err)
	msg := err.Error()

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		status = httpErr.Code
		msg = fmt.Sprintf("%v", httpErr.Message)
	}

	if status == http.StatusInternalServerError {
		logger.Error("request failed", "error", err, "uri", c.Request().RequestURI)
		msg = "internal server error"
	}

	if err := c.JSON(status, ErrorResponse{Error: msg}); err != nil {
		logger.Error("failed to write error response", "error", err)
	}
}

// handleHealth returns a simple health check response.
func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{Status: "ok"})
}

// Start starts the HTTP server.
func (s *Server) Start() error {
	addr := s.config.Server.Addr()
	logger.Info("starting http server", "addr", addr)
	return s.echo.Start(addr)
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	logger.Info("shutting down http server")
	return s.echo.Shutdown(ctx)
}
