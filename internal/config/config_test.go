package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
telegram:
  token: "123:abc"
database:
  host: localhost
quotes: {}
reminders:
  enabled: true
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "longpoll", cfg.Core.Telegram.RunMode)
	assert.Equal(t, 9, cfg.Reminders.Hour())
	assert.Equal(t, 5*time.Second, cfg.Quotes.Timeout())
	assert.Same(t, &cfg.Core, cfg.CoreConfig())
}

func TestLoadHonorsExplicitReminderHour(t *testing.T) {
	path := writeConfig(t, `
telegram:
  token: "123:abc"
reminders:
  enabled: true
  default_hour: 0
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.Reminders.Hour(), "explicit zero must not fall back to the default")
}

func TestLoadRejectsMissingToken(t *testing.T) {
	path := writeConfig(t, `
telegram:
  token: ""
`)

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadRejectsBadReminderHour(t *testing.T) {
	path := writeConfig(t, `
telegram:
  token: "123:abc"
reminders:
  default_hour: 24
`)

	_, err := Load(path)
	assert.Error(t, err)
}
