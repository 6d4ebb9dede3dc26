package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planner-app/backend/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/planner")

	cfg, err := config.Load()

	require.NoError(t, err)
	assert.Equal(t, "3333", cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.CORSOrigins)
	assert.Equal(t, "http://localhost:3333", cfg.APIBaseURL)
	assert.Equal(t, "http://localhost:5173", cfg.WebBaseURL)
	assert.Equal(t, 587, cfg.SMTPPort)
	assert.Equal(t, "Plann.er Team", cfg.MailFromName)
	assert.Equal(t, "hi@planner.com", cfg.MailFromAddr)
}

func TestLoad_MissingDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	_, err := config.Load()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_URL")
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/planner")
	t.Setenv("PORT", "8080")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("API_BASE_URL", "https://api.planner.example/")
	t.Setenv("SMTP_HOST", "smtp.example.com")
	t.Setenv("SMTP_PORT", "2525")

	cfg, err := config.Load()

	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
	// Trailing slash is trimmed so link building can always append paths.
	assert.Equal(t, "https://api.planner.example", cfg.APIBaseURL)
	assert.Equal(t, "smtp.example.com", cfg.SMTPHost)
	assert.Equal(t, 2525, cfg.SMTPPort)
}

func TestLoad_InvalidSMTPPort(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/planner")
	t.Setenv("SMTP_PORT", "not-a-port")

	_, err := config.Load()

	assert.Error(t, err)
}
