package constants

import "time"

const (
	AppName           = "ganttlog"
	DefaultConfigPath = "~/.config/ganttlog/config.yaml"
	Version           = "v0.3.1"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// SessionCookie is the name of the session cookie issued on login
	SessionCookie = "ganttlog_session"

	// Server defaults
	DefaultHost            = "localhost"
	DefaultPort            = 8484
	DefaultShutdownTimeout = 10 * time.Second

	// Auth defaults
	DefaultSessionTTL = 30 * 24 * time.Hour
	DefaultBcryptCost = 12

	// DefaultProjectColor is applied when a project carries no color token
	DefaultProjectColor = "#d04f3b"

	// ClickDelay is the window within which a second click counts as a double-click
	ClickDelay = 220 * time.Millisecond

	// Progress bounds
	MinProgress = 0
	MaxProgress = 100
)
