package config

import (
	"fmt"
	"os"
)

// Config holds all configuration for the application
type Config struct {
	DatabaseURL      string
	LogLevel         string
	Port             string
	GeminiAPIKey     string
	AIProxyURL       string
	RolloverSchedule string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		LogLevel: getEnvOrDefault("LOG_LEVEL", "info"),
		Port:     getEnvOrDefault("PORT", "8080"),
		// Planner rollover runs shortly after midnight by default.
		RolloverSchedule: getEnvOrDefault("ROLLOVER_SCHEDULE", "5 0 * * *"),
		GeminiAPIKey:     os.Getenv("GEMINI_API_KEY"),
		AIProxyURL:       os.Getenv("AI_PROXY_URL"),
	}

	if cfg.DatabaseURL = os.Getenv("DATABASE_URL"); cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	return cfg, nil
}

// getEnvOrDefault returns environment variable value or default if not set
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
