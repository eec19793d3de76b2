package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Server.Port != 8484 {
		t.Errorf("port = %d, want 8484", cfg.Server.Port)
	}
	if cfg.Server.Host != "localhost" {
		t.Errorf("host = %s, want localhost", cfg.Server.Host)
	}
	if cfg.Auth.BcryptCost != 12 {
		t.Errorf("bcrypt cost = %d, want 12", cfg.Auth.BcryptCost)
	}
	if cfg.Database.Path == "" {
		t.Error("database path should have a default")
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Server.Port != Default().Server.Port {
		t.Errorf("port = %d, want default", cfg.Server.Port)
	}
}

func TestLoadYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
server:
  host: 0.0.0.0
  port: 9000
  shutdown_timeout: 5s
database:
  path: /tmp/test.db
log:
  debug: true
auth:
  session_ttl: 24h
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Server.Host != "0.0.0.0" || cfg.Server.Port != 9000 {
		t.Errorf("server = %+v", cfg.Server)
	}
	if cfg.Server.ShutdownTimeout != 5*time.Second {
		t.Errorf("shutdown timeout = %v, want 5s", cfg.Server.ShutdownTimeout)
	}
	if cfg.Database.Path != "/tmp/test.db" {
		t.Errorf("database path = %s", cfg.Database.Path)
	}
	if !cfg.Log.Debug {
		t.Error("debug should be true")
	}
	if cfg.Auth.SessionTTL != 24*time.Hour {
		t.Errorf("session ttl = %v, want 24h", cfg.Auth.SessionTTL)
	}
	// Unset fields keep their defaults.
	if cfg.Auth.BcryptCost != 12 {
		t.Errorf("bcrypt cost = %d, want default 12", cfg.Auth.BcryptCost)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("server:\n  port: 9000\n"), 0600); err != nil {
		t.Fatal(err)
	}

	t.Setenv("GANTTLOG_SERVER_PORT", "7777")
	t.Setenv("GANTTLOG_AUTH_SESSION_TTL", "1h")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Server.Port != 7777 {
		t.Errorf("port = %d, want env override 7777", cfg.Server.Port)
	}
	if cfg.Auth.SessionTTL != time.Hour {
		t.Errorf("session ttl = %v, want 1h", cfg.Auth.SessionTTL)
	}
}

func TestLoadBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(":\n  - not yaml ["), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load() should fail on malformed yaml")
	}
}

func TestTransformEnv(t *testing.T) {
	tests := []struct{ in, want string }{
		{"GANTTLOG_SERVER_PORT", "server.port"},
		{"GANTTLOG_SERVER_SHUTDOWN_TIMEOUT", "server.shutdown_timeout"},
		{"GANTTLOG_AUTH_SESSION_TTL", "auth.session_ttl"},
		{"GANTTLOG_DATABASE_PATH", "database.path"},
	}
	for _, tt := range tests {
		if got := transformEnv(tt.in); got != tt.want {
			t.Errorf("transformEnv(%s) = %s, want %s", tt.in, got, tt.want)
		}
	}
}
