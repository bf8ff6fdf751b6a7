package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("CONFIG_FILE", "")
	LoadConfig()

	assert.Equal(t, "8080", ServerPort)
	assert.Equal(t, "postgres", DbDriver)
	assert.Equal(t, 24*time.Hour, TokenTTL)
	assert.Equal(t, 30, AuditRetentionDays)
	assert.Equal(t, []string{"http://localhost:3000"}, AllowedOrigins)
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
server_port: "9090"
db_driver: sqlite
issue_rate_limit: 3
allowed_origins:
  - https://a.example
  - https://b.example
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	t.Setenv("CONFIG_FILE", path)
	t.Setenv("SERVER_PORT", "7070")
	LoadConfig()

	assert.Equal(t, "7070", ServerPort)
	assert.Equal(t, "sqlite", DbDriver)
	assert.Equal(t, 3, IssueRateLimit)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, AllowedOrigins)
}

func TestLoadConfig_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("CONFIG_FILE", "")
	t.Setenv("ISSUE_RATE_LIMIT", "lots")
	t.Setenv("AI_TIMEOUT", "soon")
	LoadConfig()

	assert.Equal(t, 10, IssueRateLimit)
	assert.Equal(t, 20*time.Second, AITimeout)
}

func TestLoadConfig_MissingFileIgnored(t *testing.T) {
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "nope.yaml"))
	LoadConfig()
	assert.Equal(t, "8080", ServerPort)
}
