package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port        string
	Environment string
	CORSOrigins string
	// Project API (the service of record for projects and accounts)
	ProjectAPIURL       string
	ProjectAPITimeout   time.Duration
	ProjectAPIRateLimit float64 // requests per second, 0 = unlimited
	ProjectAPIBurst     int
	// Sessions
	SessionSecret string
	SessionTTL    time.Duration
	AuthJWKSURL   string // optional: accept bearer tokens from an identity provider
	// Dashboard stores
	DashboardStaleAfter time.Duration // GET /api/dashboard reloads older data, 0 = never
	// Logging
	LogDir      string
	LogMaxFiles int
}

func Load() *Config {
	env := getEnv("ENVIRONMENT", "dev")

	return &Config{
		Port:                getEnv("PORT", "8080"),
		Environment:         env,
		CORSOrigins:         getEnv("CORS_ORIGINS", "http://localhost:3000"),
		ProjectAPIURL:       getEnv("PROJECT_API_URL", "http://localhost:4000"),
		ProjectAPITimeout:   getEnvAsDuration("PROJECT_API_TIMEOUT", 15*time.Second),
		ProjectAPIRateLimit: getEnvAsFloat("PROJECT_API_RATE_LIMIT", 0),
		ProjectAPIBurst:     getEnvAsInt("PROJECT_API_BURST", 10),
		SessionSecret:       getEnv("SESSION_SECRET", getDefaultSessionSecret(env)),
		SessionTTL:          getEnvAsDuration("SESSION_TTL", 24*time.Hour),
		AuthJWKSURL:         getEnv("AUTH_JWKS_URL", ""),
		DashboardStaleAfter: getEnvAsDuration("DASHBOARD_STALE_AFTER", 30*time.Second),
		LogDir:              getEnv("LOG_DIR", ""),
		LogMaxFiles:         getEnvAsInt("LOG_MAX_FILES", 10),
	}
}

func (c *Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("PORT is required")
	}
	if c.ProjectAPIURL == "" {
		return fmt.Errorf("PROJECT_API_URL is required")
	}
	if c.SessionSecret == "" {
		return fmt.Errorf("SESSION_SECRET is required")
	}
	if len(c.SessionSecret) < MinSessionSecretLength {
		return fmt.Errorf("SESSION_SECRET must be at least %d bytes", MinSessionSecretLength)
	}
	if c.SessionTTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be positive")
	}
	if c.DashboardStaleAfter < 0 {
		return fmt.Errorf("DASHBOARD_STALE_AFTER must not be negative")
	}
	if c.ProjectAPIRateLimit < 0 {
		return fmt.Errorf("PROJECT_API_RATE_LIMIT must not be negative")
	}
	return nil
}

// IsProduction reports whether cookies must be marked secure
func (c *Config) IsProduction() bool {
	return c.Environment == "prod"
}

// getDefaultSessionSecret returns a fixed secret outside production so the
// dev server starts without setup. Production must set SESSION_SECRET.
func getDefaultSessionSecret(env string) string {
	if env == "prod" {
		return ""
	}
	return "projectboard-dev-session-secret-change-me"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		slog.Warn("invalid integer in environment, using default", "key", key, "default", defaultValue)
		return defaultValue
	}

	return value
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		slog.Warn("invalid number in environment, using default", "key", key, "default", defaultValue)
		return defaultValue
	}

	return value
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := time.ParseDuration(valueStr)
	if err != nil {
		slog.Warn("invalid duration in environment, using default", "key", key, "default", defaultValue)
		return defaultValue
	}

	return value
}
