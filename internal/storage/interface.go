package storage

import (
	"time"

	"github.com/ganttlabs/ganttlog/internal/models"
)

// Provider is the persistence seam the rest of the application talks to. All
// project and entry reads are scoped to an owner; the calendar core receives
// the returned slices as read-only snapshots for one render pass.
type Provider interface {
	// Lifecycle
	Init() error
	Close() error

	// Users
	CreateUser(models.User) error
	GetUser(id string) (models.User, error)
	GetUserByEmail(email string) (models.User, error)

	// Sessions
	CreateSession(models.Session) error
	GetSession(token string) (models.Session, error)
	DeleteSession(token string) error
	DeleteExpiredSessions(now time.Time) (int, error)

	// Projects
	AddProject(models.Project) error
	GetProject(ownerID, id string) (models.Project, error)
	GetAllProjects(ownerID string) ([]models.Project, error)
	UpdateProject(models.Project) error
	DeleteProject(ownerID, id string) error

	// Project events
	AddEvent(models.ProjectEvent) error
	GetEvent(projectID, id string) (models.ProjectEvent, error)
	GetEventsForProject(projectID string) ([]models.ProjectEvent, error)
	UpdateEvent(models.ProjectEvent) error
	DeleteEvent(projectID, id string) error

	// Daily entries (unique per owner and date; writes are upserts)
	UpsertEntry(models.DailyEntry) (models.DailyEntry, error)
	GetEntry(ownerID, date string) (models.DailyEntry, error)
	GetAllEntries(ownerID string) ([]models.DailyEntry, error)
	DeleteEntry(ownerID, date string) error
}
