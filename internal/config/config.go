// Package config provides configuration management functionality.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Environment names the deployment profile the analyzer runs under.
type Environment string

const (
	Development Environment = "development"
	Production  Environment = "production"
	Test        Environment = "test"
)

// Config holds application configuration
type Config struct {
	Environment Environment
	APIBaseURL  string        // Scoring backend base URL
	APITimeout  time.Duration // Per-request timeout for collaborator calls
	LogLevel    string
	DevMode     bool
}

// profileDefaults carries the per-environment base URL and timeout used when
// no explicit override is present in the environment.
type profileDefaults struct {
	baseURL string
	timeout time.Duration
}

var profiles = map[Environment]profileDefaults{
	Development: {baseURL: "http://localhost:8000", timeout: 30 * time.Second},
	Production:  {baseURL: "https://api.dvm-scoring.com", timeout: 60 * time.Second},
	Test:        {baseURL: "http://localhost:8000", timeout: 5 * time.Second},
}

// Load reads configuration from a .env file (if present) and the process
// environment. Unknown environment names are rejected rather than silently
// falling back, since the profile decides which backend gets real traffic.
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	env := Environment(strings.ToLower(getEnv("APP_ENV", string(Development))))
	defaults, ok := profiles[env]
	if !ok {
		return nil, fmt.Errorf("unknown environment %q (expected development, production or test)", env)
	}

	timeout := defaults.timeout
	if raw := os.Getenv("SCORING_API_TIMEOUT"); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid SCORING_API_TIMEOUT %q: %w", raw, err)
		}
		if parsed <= 0 {
			return nil, fmt.Errorf("SCORING_API_TIMEOUT must be positive, got %q", raw)
		}
		timeout = parsed
	}

	cfg := &Config{
		Environment: env,
		APIBaseURL:  strings.TrimRight(getEnv("SCORING_API_URL", defaults.baseURL), "/"),
		APITimeout:  timeout,
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		DevMode:     env != Production,
	}

	return cfg, nil
}

// getEnv retrieves an environment variable value, returning a fallback if the
// variable is not set or is empty.
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
