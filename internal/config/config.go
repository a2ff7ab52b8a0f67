package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds application configuration
type Config struct {
	Env      string
	LogLevel string

	// Reservation platform API
	APIBaseURL     string
	APIToken       string
	APIEmail       string
	APIPassword    string
	RequestTimeout time.Duration
	UserAgent      string

	// Concurrency limits for aggregate loaders
	EnrichConcurrency int

	// Booking defaults
	BookingWindowDays int
}

// Load reads configuration from environment variables
func Load() *Config {
	return &Config{
		Env:      getEnv("ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		APIBaseURL:     getEnv("MEDRESERVE_API_URL", "http://localhost:8080/api"),
		APIToken:       getEnv("MEDRESERVE_API_TOKEN", ""),
		APIEmail:       getEnv("MEDRESERVE_EMAIL", ""),
		APIPassword:    getEnv("MEDRESERVE_PASSWORD", ""),
		RequestTimeout: getEnvAsDuration("MEDRESERVE_REQUEST_TIMEOUT", 15*time.Second),
		UserAgent:      getEnv("MEDRESERVE_USER_AGENT", ""),

		EnrichConcurrency: getEnvAsInt("MEDRESERVE_ENRICH_CONCURRENCY", 4),

		BookingWindowDays: getEnvAsInt("MEDRESERVE_BOOKING_WINDOW_DAYS", 30),
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	return defaultValue
}
