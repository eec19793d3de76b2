package models

import "time"

// Project is a date-ranged bar on the calendar and gantt views. StartDate and
// EndDate are inclusive local calendar days in YYYY-MM-DD format; no
// time-of-day is carried. A project whose end precedes its start is kept as
// stored and degrades to a zero-width bar at render time.
type Project struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"owner_id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	StartDate   string    `json:"start_date"` // YYYY-MM-DD format
	EndDate     string    `json:"end_date"`   // YYYY-MM-DD format
	Progress    int       `json:"progress"`   // 0-100
	Color       string    `json:"color,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ProjectEvent is a dated milestone attached to a project. Multiple events may
// share a date.
type ProjectEvent struct {
	ID        string    `json:"id"`
	ProjectID string    `json:"project_id"`
	Date      string    `json:"date"` // YYYY-MM-DD format
	Title     string    `json:"title"`
	Color     string    `json:"color,omitempty"`
	Note      string    `json:"note,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
