// Package config provides configuration management functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata" // timezone names resolve on hosts without zoneinfo

	"github.com/joho/godotenv"

	"github.com/Techinterview-space/web-api-sub003/internal/export"
)

var (
	// ErrInvalidFormat is returned for an unsupported output format
	ErrInvalidFormat = errors.New("unsupported output format")
	// ErrInvalidInterval is returned for a non-positive bucket interval
	ErrInvalidInterval = errors.New("interval minutes must be positive")
	// ErrInvalidTimezone is returned when the timezone cannot be loaded
	ErrInvalidTimezone = errors.New("unknown timezone")
)

// Config holds application configuration
type Config struct {
	LogLevel        string
	LogPretty       bool
	Timezone        string // IANA name used to interpret date-only inputs
	IntervalMinutes int    // Default bucket width for the buckets command
	OutputFormat    string // one of the export formats

	location *time.Location
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	cfg := FromEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// FromEnv reads configuration from the environment without validating it,
// so callers can apply overrides first
func FromEnv() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	return &Config{
		LogLevel:        getEnv("SALARY_CHARTS_LOG_LEVEL", "info"),
		LogPretty:       getEnvAsBool("SALARY_CHARTS_LOG_PRETTY", false),
		Timezone:        getEnv("SALARY_CHARTS_TIMEZONE", "UTC"),
		IntervalMinutes: getEnvAsInt("SALARY_CHARTS_INTERVAL_MINUTES", 1440),
		OutputFormat:    getEnv("SALARY_CHARTS_OUTPUT_FORMAT", export.FormatJSON),
	}
}

// Validate checks the configuration and resolves the timezone
func (c *Config) Validate() error {
	c.OutputFormat = strings.ToLower(strings.TrimSpace(c.OutputFormat))
	switch c.OutputFormat {
	case export.FormatJSON, export.FormatCSV, export.FormatMsgpack:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidFormat, c.OutputFormat)
	}

	if c.IntervalMinutes <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidInterval, c.IntervalMinutes)
	}

	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return fmt.Errorf("%w: %q: %v", ErrInvalidTimezone, c.Timezone, err)
	}
	c.location = loc

	return nil
}

// Location returns the configured timezone, UTC before Validate succeeds
func (c *Config) Location() *time.Location {
	if c.location == nil {
		return time.UTC
	}
	return c.location
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
