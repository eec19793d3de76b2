// Package config provides configuration loading for ganttlog.
//
// Configuration precedence (highest to lowest):
//  1. Environment variables (GANTTLOG_SERVER_PORT, GANTTLOG_DATABASE_PATH, ...)
//  2. YAML config file
//  3. Hardcoded defaults
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"

	"github.com/ganttlabs/ganttlog/internal/constants"
)

const envPrefix = "GANTTLOG_"

// Config holds the complete ganttlog configuration.
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Database DatabaseConfig `koanf:"database"`
	Log      LogConfig      `koanf:"log"`
	Auth     AuthConfig     `koanf:"auth"`
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// DatabaseConfig holds the sqlite database location.
type DatabaseConfig struct {
	Path string `koanf:"path"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Debug bool   `koanf:"debug"`
	Dir   string `koanf:"dir"`
}

// AuthConfig holds session and password-hashing configuration.
type AuthConfig struct {
	SessionTTL   time.Duration `koanf:"session_ttl"`
	BcryptCost   int           `koanf:"bcrypt_cost"`
	SecureCookie bool          `koanf:"secure_cookie"`
}

// Addr returns the host:port the server binds to.
func (c ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Default returns the built-in configuration, rooted under the user's config
// directory.
func Default() *Config {
	dir := defaultDir()
	return &Config{
		Server: ServerConfig{
			Host:            constants.DefaultHost,
			Port:            constants.DefaultPort,
			ShutdownTimeout: constants.DefaultShutdownTimeout,
		},
		Database: DatabaseConfig{
			Path: filepath.Join(dir, "ganttlog.db"),
		},
		Log: LogConfig{
			Debug: false,
			Dir:   dir,
		},
		Auth: AuthConfig{
			SessionTTL:   constants.DefaultSessionTTL,
			BcryptCost:   constants.DefaultBcryptCost,
			SecureCookie: false,
		},
	}
}

// Load reads configuration from the YAML file at configPath (skipped when the
// file does not exist), then overrides with GANTTLOG_* environment variables.
//
// Environment variables map underscores to nesting on the first separator:
//
//	GANTTLOG_SERVER_PORT       -> server.port
//	GANTTLOG_AUTH_SESSION_TTL  -> auth.session_ttl
func Load(configPath string) (*Config, error) {
	k := koanf.New(".")

	if configPath != "" {
		if content, err := os.ReadFile(configPath); err == nil {
			if err := k.Load(rawbytes.Provider(content), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("failed to parse config file %s: %w", configPath, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", transformEnv), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}

	cfg := Default()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return cfg, nil
}

// transformEnv maps GANTTLOG_SECTION_FIELD_NAME to section.field_name: the
// first underscore after the prefix becomes the nesting separator, the rest
// stay as-is so compound field names survive.
func transformEnv(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, envPrefix))
	return strings.Replace(s, "_", ".", 1)
}

func defaultDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".config", "ganttlog")
}
