package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tmajeur/arcanabot/internal/config"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfigValid(t *testing.T) {
	path := writeConfigFile(t, `
logger:
  level: debug
  json: true
telegram:
  token: "123456:test-token"
  admin_user_id: 42
  admin_chat_id: -100
database:
  path: /tmp/test.db
reading:
  include_reversals: false
  history_limit: 10
  default_language: es
`)

	cfg, err := config.LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logger.Level)
	assert.True(t, cfg.Logger.JSON)
	assert.Equal(t, "123456:test-token", cfg.Telegram.Token)
	assert.Equal(t, int64(42), cfg.Telegram.AdminUserID)
	assert.Equal(t, int64(-100), cfg.Telegram.AdminChatID)
	assert.Equal(t, "/tmp/test.db", cfg.Database.Path)
	assert.False(t, cfg.Reading.IncludeReversals)
	assert.Equal(t, 10, cfg.Reading.HistoryLimit)
	assert.Equal(t, "es", cfg.Reading.DefaultLanguage)
}

func TestLoadConfigDefaults(t *testing.T) {
	path := writeConfigFile(t, `
telegram:
  token: "123456:test-token"
  admin_user_id: 42
`)

	cfg, err := config.LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Logger.Level)
	assert.False(t, cfg.Logger.JSON)
	assert.Equal(t, "arcana.db", cfg.Database.Path)
	assert.Equal(t, "gemini-2.0-flash", cfg.Gemini.ModelName)
	assert.True(t, cfg.Gemini.Enabled)
	assert.True(t, cfg.Reading.IncludeReversals)
	assert.Equal(t, 5, cfg.Reading.HistoryLimit)
	assert.Equal(t, "en", cfg.Reading.DefaultLanguage)
	assert.NotEmpty(t, cfg.Messages.Welcome)
	assert.NotEmpty(t, cfg.Messages.Help)

	maint, ok := cfg.Scheduler.Tasks["sql_maintenance"]
	require.True(t, ok)
	assert.True(t, maint.Enabled)
	assert.Equal(t, "0 0 4 * * *", maint.Schedule)

	daily, ok := cfg.Scheduler.Tasks["daily_card"]
	require.True(t, ok)
	assert.False(t, daily.Enabled)
}

func TestLoadConfigMissingToken(t *testing.T) {
	path := writeConfigFile(t, `
telegram:
  admin_user_id: 42
`)

	_, err := config.LoadConfig(path)
	require.ErrorIs(t, err, config.ErrConfiguration)
}

func TestLoadConfigInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"bad log level", `
logger:
  level: verbose
telegram:
  token: "t"
  admin_user_id: 42
`},
		{"negative admin id", `
telegram:
  token: "t"
  admin_user_id: -1
`},
		{"history limit out of range", `
telegram:
  token: "t"
  admin_user_id: 42
reading:
  history_limit: 500
`},
		{"temperature out of range", `
telegram:
  token: "t"
  admin_user_id: 42
gemini:
  temperature: 3.5
`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := writeConfigFile(t, tc.yaml)
			_, err := config.LoadConfig(path)
			require.ErrorIs(t, err, config.ErrConfiguration)
		})
	}
}

func TestLoadConfigEnvOverridesFile(t *testing.T) {
	t.Setenv("BOT_TELEGRAM_TOKEN", "123456:env-token")

	path := writeConfigFile(t, `
telegram:
  token: "123456:file-token"
  admin_user_id: 42
`)

	cfg, err := config.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "123456:env-token", cfg.Telegram.Token, "environment wins over the file")
}

func TestLoadConfigMissingFileTolerated(t *testing.T) {
	// No file and no env token: loading must reach validation (which
	// rejects the empty token) rather than fail on the read itself.
	_, err := config.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, config.ErrConfiguration)
	assert.Contains(t, err.Error(), "Token")
}

func TestLoadConfigMalformedFile(t *testing.T) {
	path := writeConfigFile(t, "telegram: [not a map")

	_, err := config.LoadConfig(path)
	require.ErrorIs(t, err, config.ErrConfiguration)
}
