package config

import (
	"os"
	"strconv"
	"time"
)

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables.
type AppConfig struct {
	AppHost          string
	Port             string
	PageTitle        string
	LogTimezone      string
	MetricsEnabled   bool
	ShutdownTimeout  time.Duration
	// DraftIdleTimeout is how long an unused draft session is kept. Zero keeps sessions forever.
	DraftIdleTimeout time.Duration
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() *AppConfig {
	return &AppConfig{
		AppHost:          getEnv("APP_HOST", "localhost:8080"),
		Port:             getEnv("PORT", "8080"),
		PageTitle:        getEnv("PAGE_TITLE", "Restaurants"),
		LogTimezone:      getEnv("LOG_TIMEZONE", "UTC"),
		MetricsEnabled:   getEnvBool("METRICS_ENABLED", true),
		ShutdownTimeout:  time.Duration(getEnvInt("SHUTDOWN_TIMEOUT_SEC", 10)) * time.Second,
		DraftIdleTimeout: time.Duration(getEnvInt("DRAFT_IDLE_TIMEOUT_MIN", 30)) * time.Minute,
	}
}

// Location resolves LogTimezone, falling back to UTC when the zone is unknown.
func (c *AppConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.LogTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}
