// Package config loads and validates application configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Log store backends selectable via LOG_STORE.
const (
	StoreRemote   = "remote"
	StorePostgres = "postgres"
)

// Config holds all configuration values for the API server.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to ["http://localhost:5173"] (Vite dev server).
	// Set CORS_ORIGINS to a comma-separated list to override.
	CORSOrigins []string

	// APIBaseURL is the base URL of the route planner and export service.
	// Defaults to "http://localhost:8000".
	APIBaseURL string

	// LogStore selects where finalized daily logs are persisted:
	// "remote" (the log service at LogServiceURL) or "postgres".
	LogStore string

	// LogServiceURL is the base URL of the remote log service.
	// Defaults to APIBaseURL.
	LogServiceURL string

	// DatabaseURL is the Postgres connection string. Required when LogStore is "postgres".
	DatabaseURL string

	// Location is the time zone used for wall-clock grid positions and log dates.
	// Set TIMEZONE to an IANA name; defaults to the host's local zone.
	Location *time.Location

	// MaxDrivingHours is the daily driving limit. Defaults to 11.
	MaxDrivingHours float64

	// MaxBodyBytes caps request body size. Defaults to 1 MiB.
	MaxBodyBytes int64

	// HTTPTimeout bounds every call to an external service. Defaults to 10s.
	HTTPTimeout time.Duration
}

// Load reads configuration from environment variables and returns a Config.
// Returns an error listing any required variables that are not set, or the
// first variable whose value cannot be parsed.
func Load() (Config, error) {
	cfg := Config{
		Port:        getEnv("PORT", "8080"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		CORSOrigins: splitCSV(getEnv("CORS_ORIGINS", "http://localhost:5173")),
		APIBaseURL:  strings.TrimRight(getEnv("API_BASE_URL", "http://localhost:8000"), "/"),
		LogStore:    strings.ToLower(getEnv("LOG_STORE", StoreRemote)),
		DatabaseURL: os.Getenv("DATABASE_URL"),
	}
	cfg.LogServiceURL = strings.TrimRight(getEnv("LOG_SERVICE_URL", cfg.APIBaseURL), "/")

	var err error
	if cfg.Location, err = time.LoadLocation(getEnv("TIMEZONE", "Local")); err != nil {
		return Config{}, fmt.Errorf("invalid TIMEZONE: %w", err)
	}
	if cfg.MaxDrivingHours, err = strconv.ParseFloat(getEnv("MAX_DRIVING_HOURS", "11"), 64); err != nil || cfg.MaxDrivingHours <= 0 {
		return Config{}, fmt.Errorf("invalid MAX_DRIVING_HOURS: must be a positive number")
	}
	if cfg.MaxBodyBytes, err = strconv.ParseInt(getEnv("MAX_BODY_BYTES", "1048576"), 10, 64); err != nil || cfg.MaxBodyBytes <= 0 {
		return Config{}, fmt.Errorf("invalid MAX_BODY_BYTES: must be a positive integer")
	}
	if cfg.HTTPTimeout, err = time.ParseDuration(getEnv("HTTP_TIMEOUT", "10s")); err != nil || cfg.HTTPTimeout <= 0 {
		return Config{}, fmt.Errorf("invalid HTTP_TIMEOUT: must be a positive duration")
	}

	var missing []string
	switch cfg.LogStore {
	case StoreRemote:
	case StorePostgres:
		if cfg.DatabaseURL == "" {
			missing = append(missing, "DATABASE_URL")
		}
	default:
		return Config{}, fmt.Errorf("invalid LOG_STORE %q: want %q or %q", cfg.LogStore, StoreRemote, StorePostgres)
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("required environment variables not set: %s", strings.Join(missing, ", "))
	}

	return cfg, nil
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
