package server

import "github.com/ganttlabs/ganttlog/internal/models"

// ErrorResponse is the JSON shape of every error the API returns.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HealthResponse is the response body for GET /health.
type HealthResponse struct {
	Status string `json:"status"`
}

// RegisterRequest is the request body for POST /api/register.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the request body for POST /api/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse is the public view of a user.
type UserResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func userResponse(u models.User) UserResponse {
	return UserResponse{ID: u.ID, Name: u.Name, Email: u.Email}
}

// ProjectRequest is the request body for creating or updating a project.
type ProjectRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Progress    *int   `json:"progress"`
	Color       string `json:"color"`
}

// EventRequest is the request body for creating or updating a project event.
type EventRequest struct {
	Date  string `json:"date"`
	Title string `json:"title"`
	Color string `json:"color"`
	Note  string `json:"note"`
}

// EntryRequest is the request body for writing a daily entry.
type EntryRequest struct {
	Date        string      `json:"date"`
	Mood        models.Mood `json:"mood"`
	WorkContent string      `json:"work_content"`
	Journal     string      `json:"journal"`
}
