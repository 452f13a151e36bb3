package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds application configuration
type Config struct {
	ServerPort     string
	DatabaseType   string
	DatabaseURL    string
	DatabasePath   string
	MigrationsPath string

	// AudioCachePath is where generated prompt audio is cached.
	AudioCachePath string

	// GateTokenSecret signs short-lived parent gate tokens.
	GateTokenSecret string
	GateTokenTTL    time.Duration

	// Weekly report email settings (AWS SESv2).
	EmailFrom string
	AWSRegion string

	// Google OAuth, for linking a parent account to receive reports.
	GoogleClientID     string
	GoogleClientSecret string
	OAuthRedirectURL   string
}

// Load reads configuration from environment variables with sensible defaults
func Load() *Config {
	return &Config{
		ServerPort:     getEnv("PORT", "8080"),
		DatabaseType:   getEnv("DB_TYPE", "sqlite"),
		DatabaseURL:    getEnv("DB_URL", ""),
		DatabasePath:   getEnv("DB_PATH", "./tinyquest.db"),
		MigrationsPath: getEnv("MIGRATIONS_PATH", "./migrations"),

		AudioCachePath: getEnv("AUDIO_CACHE_PATH", "./audio-cache"),

		GateTokenSecret: getEnv("GATE_TOKEN_SECRET", ""),
		GateTokenTTL:    getEnvDuration("GATE_TOKEN_TTL", 10*time.Minute),

		EmailFrom: getEnv("EMAIL_FROM", ""),
		AWSRegion: getEnv("AWS_REGION", "eu-west-1"),

		GoogleClientID:     getEnv("GOOGLE_CLIENT_ID", ""),
		GoogleClientSecret: getEnv("GOOGLE_CLIENT_SECRET", ""),
		OAuthRedirectURL:   getEnv("OAUTH_REDIRECT_URL", "http://localhost:8080/auth/google/callback"),
	}
}

// getEnv reads an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvDuration reads a duration in seconds or returns a default value
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if seconds, err := strconv.Atoi(value); err == nil && seconds > 0 {
			return time.Duration(seconds) * time.Second
		}
	}
	return defaultValue
}
