// Package config loads application configuration from environment variables.
// All variables use the BOOTCAMP_ prefix.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	Cache      CacheConfig
	Log        LogConfig
	Catalog    CatalogConfig
	Transition TransitionConfig
	Countdown  CountdownConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port            int
	Host            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
	// AllowedOrigins are extra host patterns accepted on the WebSocket
	// endpoint besides same-origin requests.
	AllowedOrigins []string
}

// Addr returns the listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// DatabaseConfig holds PostgreSQL settings for analytics. An empty URL keeps
// analytics in memory.
type DatabaseConfig struct {
	URL      string
	MaxConns int
	MinConns int
}

// Enabled reports whether a database is configured.
func (d DatabaseConfig) Enabled() bool {
	return d.URL != ""
}

// CacheConfig holds Dragonfly/Redis settings for rendered fragments. An
// empty URL uses an in-process cache.
type CacheConfig struct {
	URL string
	TTL time.Duration
}

// Enabled reports whether a remote cache is configured.
func (c CacheConfig) Enabled() bool {
	return c.URL != ""
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string
	Format string
}

// SlogLevel maps Level to a slog.Level. Unknown values fall back to info.
func (l LogConfig) SlogLevel() slog.Level {
	switch strings.ToLower(l.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

// CatalogConfig points at an optional catalog file. Empty means the
// catalog embedded in the binary.
type CatalogConfig struct {
	Path string
}

// TransitionConfig holds the modal fade timings.
type TransitionConfig struct {
	ShowDelay time.Duration
	HideDelay time.Duration
}

// CountdownConfig holds the promo banner window.
type CountdownConfig struct {
	Period time.Duration
}

// Load reads configuration from environment variables with BOOTCAMP_ prefix.
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:            envInt("BOOTCAMP_SERVER_PORT", 8080),
			Host:            envStr("BOOTCAMP_SERVER_HOST", "0.0.0.0"),
			ReadTimeout:     envDuration("BOOTCAMP_SERVER_READ_TIMEOUT", 10*time.Second),
			WriteTimeout:    envDuration("BOOTCAMP_SERVER_WRITE_TIMEOUT", 30*time.Second),
			IdleTimeout:     envDuration("BOOTCAMP_SERVER_IDLE_TIMEOUT", 60*time.Second),
			ShutdownTimeout: envDuration("BOOTCAMP_SERVER_SHUTDOWN_TIMEOUT", 10*time.Second),
			AllowedOrigins:  envList("BOOTCAMP_SERVER_ALLOWED_ORIGINS"),
		},
		Database: DatabaseConfig{
			URL:      envStr("BOOTCAMP_DATABASE_URL", ""),
			MaxConns: envInt("BOOTCAMP_DATABASE_MAX_CONNS", 10),
			MinConns: envInt("BOOTCAMP_DATABASE_MIN_CONNS", 1),
		},
		Cache: CacheConfig{
			URL: envStr("BOOTCAMP_CACHE_URL", ""),
			TTL: envDuration("BOOTCAMP_CACHE_TTL", time.Hour),
		},
		Log: LogConfig{
			Level:  envStr("BOOTCAMP_LOG_LEVEL", "info"),
			Format: envStr("BOOTCAMP_LOG_FORMAT", "json"),
		},
		Catalog: CatalogConfig{
			Path: envStr("BOOTCAMP_CATALOG_PATH", ""),
		},
		Transition: TransitionConfig{
			ShowDelay: envDuration("BOOTCAMP_MODAL_SHOW_DELAY", 10*time.Millisecond),
			HideDelay: envDuration("BOOTCAMP_MODAL_HIDE_DELAY", 300*time.Millisecond),
		},
		Countdown: CountdownConfig{
			Period: envDuration("BOOTCAMP_COUNTDOWN_PERIOD", 72*time.Hour),
		},
	}

	return cfg, nil
}

// Validate checks that configuration values are usable.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("BOOTCAMP_SERVER_PORT must be between 1 and 65535, got %d", c.Server.Port)
	}

	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("BOOTCAMP_LOG_LEVEL must be one of debug, info, warn, error, got %q", c.Log.Level)
	}

	if c.Log.Format != "json" && c.Log.Format != "text" {
		return fmt.Errorf("BOOTCAMP_LOG_FORMAT must be 'json' or 'text', got %q", c.Log.Format)
	}

	if c.Transition.ShowDelay < 0 || c.Transition.HideDelay < 0 {
		return fmt.Errorf("modal transition delays must not be negative")
	}

	if c.Countdown.Period <= 0 {
		return fmt.Errorf("BOOTCAMP_COUNTDOWN_PERIOD must be positive, got %s", c.Countdown.Period)
	}

	if c.Database.Enabled() && c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("BOOTCAMP_DATABASE_MIN_CONNS (%d) exceeds BOOTCAMP_DATABASE_MAX_CONNS (%d)",
			c.Database.MinConns, c.Database.MaxConns)
	}

	return nil
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

func envList(key string) []string {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
