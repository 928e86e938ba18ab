package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	// GitHub
	GitHubToken string

	// API Server
	APIPort string
	APIHost string

	// Journey defaults
	JourneyDuration float64 // seconds
	JourneyDistance float64 // depth units
	StageTablePath  string  // optional YAML override for the stage table

	// CLI
	APIEndpoint string
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	return &Config{
		GitHubToken:     getEnv("GITHUB_TOKEN", ""),
		APIPort:         getEnv("API_PORT", "8080"),
		APIHost:         getEnv("API_HOST", "localhost"),
		JourneyDuration: getEnvFloat("JOURNEY_DURATION", 60),
		JourneyDistance: getEnvFloat("JOURNEY_DISTANCE", 3600),
		StageTablePath:  getEnv("STAGE_TABLE_PATH", ""),
		APIEndpoint:     getEnv("API_ENDPOINT", "http://localhost:8080"),
	}, nil
}

// getEnv returns the value of an environment variable or a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvFloat returns a float environment variable or a default value
func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil && f > 0 {
			return f
		}
	}
	return defaultValue
}

// Validate validates the configuration. A missing GitHub token is not a
// startup failure: the wrapped endpoint reports it per request as a
// configuration error.
func (c *Config) Validate() error {
	if c.JourneyDuration <= 0 {
		return &ConfigError{Field: "JOURNEY_DURATION", Message: "must be positive"}
	}
	if c.JourneyDistance <= 0 {
		return &ConfigError{Field: "JOURNEY_DISTANCE", Message: "must be positive"}
	}
	return nil
}

// ConfigError represents a configuration error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
