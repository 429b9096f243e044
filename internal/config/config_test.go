package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	c := Load(filepath.Join(t.TempDir(), "missing.yaml"))

	assert.Equal(t, ":8080", c.Addr())
	assert.Equal(t, 1500*time.Millisecond, c.TypingDelay())
	assert.Equal(t, "th", c.I18n.DefaultLocale)
	assert.Empty(t, c.Webhook.URL)
	require.Len(t, c.Auth.Users, 1)
	assert.Equal(t, "somchai", c.Auth.Users[0].Username)
}

func TestLoadFileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte(`
server:
  port: 9000
webhook:
  url: http://localhost:5678/webhook/register
  timeout_ms: 2500
chat:
  typing_delay_ms: 10
`)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	t.Setenv("PORT", "9100")
	t.Setenv("DEFAULT_LOCALE", "en")

	c := Load(path)
	assert.Equal(t, ":9100", c.Addr())
	assert.Equal(t, "http://localhost:5678/webhook/register", c.Webhook.URL)
	assert.Equal(t, 2500*time.Millisecond, c.WebhookTimeout())
	assert.Equal(t, 10*time.Millisecond, c.TypingDelay())
	assert.Equal(t, "en", c.I18n.DefaultLocale)
	// untouched sections keep their defaults
	assert.Equal(t, 60*time.Minute, c.SessionTTL())
}

func TestEnvOverrideIntIgnoresGarbage(t *testing.T) {
	t.Setenv("PORT", "eighty")
	c := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Equal(t, 8080, c.Server.Port)
}
