// Package config loads and validates application configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration values for the API server.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "3333".
	Port string

	// DatabaseURL is the Postgres connection string. Required.
	DatabaseURL string

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to ["http://localhost:5173"] (Vite dev server).
	// Set CORS_ORIGINS to a comma-separated list to override.
	CORSOrigins []string

	// APIBaseURL is this server's public base URL, used to build the
	// participant confirmation links embedded in invitation emails.
	// Defaults to "http://localhost:3333".
	APIBaseURL string

	// WebBaseURL is the frontend base URL that trip confirmation redirects to.
	// Defaults to "http://localhost:5173".
	WebBaseURL string

	// SMTPHost and friends configure the outbound mailer. When SMTPHost is
	// empty the server falls back to a log-only mailer, so local development
	// needs no SMTP server.
	SMTPHost string
	SMTPPort int
	SMTPUser string
	SMTPPass string

	// MailFromName and MailFromAddr identify the sender of all outbound mail.
	MailFromName string
	MailFromAddr string
}

// Load reads configuration from environment variables and returns a Config.
// A .env file in the working directory is loaded first if present, without
// overriding variables already set in the environment.
// Returns an error listing any required variables that are not set.
func Load() (Config, error) {
	// Best effort; a missing .env file is the normal case in production.
	_ = godotenv.Load()

	cfg := Config{
		Port:         getEnv("PORT", "3333"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		CORSOrigins:  splitCSV(getEnv("CORS_ORIGINS", "http://localhost:5173")),
		APIBaseURL:   strings.TrimRight(getEnv("API_BASE_URL", "http://localhost:3333"), "/"),
		WebBaseURL:   strings.TrimRight(getEnv("WEB_BASE_URL", "http://localhost:5173"), "/"),
		SMTPHost:     os.Getenv("SMTP_HOST"),
		SMTPUser:     os.Getenv("SMTP_USER"),
		SMTPPass:     os.Getenv("SMTP_PASS"),
		MailFromName: getEnv("MAIL_FROM_NAME", "Plann.er Team"),
		MailFromAddr: getEnv("MAIL_FROM_ADDR", "hi@planner.com"),
	}

	port := getEnv("SMTP_PORT", "587")
	if _, err := fmt.Sscanf(port, "%d", &cfg.SMTPPort); err != nil {
		return Config{}, fmt.Errorf("invalid SMTP_PORT %q: %w", port, err)
	}

	var missing []string

	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	if cfg.DatabaseURL == "" {
		missing = append(missing, "DATABASE_URL")
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
