package common

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "riskintel.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestNewDefaultConfig(t *testing.T) {
	config := NewDefaultConfig()

	assert.Equal(t, "development", config.Environment)
	assert.Equal(t, 8080, config.Server.Port)
	assert.Equal(t, "localhost", config.Server.Host)
	assert.Equal(t, "./data", config.Dataset.Dir)
	assert.Equal(t, "reports/generated_reports", config.Reports.Dir)
	assert.True(t, config.Reports.PDFEnabled)
	assert.Equal(t, "agent-", config.Auth.AgentKeyPrefix)
	assert.False(t, config.Sweep.Enabled)
	assert.Equal(t, "0 6 * * *", config.Sweep.Schedule)
}

func TestLoadFromFiles(t *testing.T) {
	path := writeConfigFile(t, `
environment = "production"

[server]
port = 9090

[dataset]
dir = "/var/lib/riskintel/data"

[escalation]
webhook_url = "https://example.webhook.office.com/x"

[sweep]
enabled = true
schedule = "0 7 * * *"
`)

	config, err := LoadFromFiles(path)
	require.NoError(t, err)

	assert.Equal(t, "production", config.Environment)
	assert.Equal(t, 9090, config.Server.Port)
	// Unset keys keep their defaults
	assert.Equal(t, "localhost", config.Server.Host)
	assert.Equal(t, "/var/lib/riskintel/data", config.Dataset.Dir)
	assert.Equal(t, "https://example.webhook.office.com/x", config.Escalation.WebhookURL)
	assert.True(t, config.Sweep.Enabled)
	assert.Equal(t, "0 7 * * *", config.Sweep.Schedule)
}

func TestLoadFromFiles_LaterFileOverrides(t *testing.T) {
	first := writeConfigFile(t, "[server]\nport = 9090\n")
	second := writeConfigFile(t, "[server]\nport = 7070\n")

	config, err := LoadFromFiles(first, second)
	require.NoError(t, err)
	assert.Equal(t, 7070, config.Server.Port)
}

func TestLoadFromFiles_EnvOverrides(t *testing.T) {
	t.Setenv("RISKINTEL_PORT", "6060")
	t.Setenv("RISKINTEL_WEBHOOK_URL", "https://env.webhook.office.com/y")

	path := writeConfigFile(t, "[server]\nport = 9090\n")

	config, err := LoadFromFiles(path)
	require.NoError(t, err)
	assert.Equal(t, 6060, config.Server.Port)
	assert.Equal(t, "https://env.webhook.office.com/y", config.Escalation.WebhookURL)
}

func TestLoadFromFiles_Invalid(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := LoadFromFiles("does-not-exist.toml")
		assert.Error(t, err)
	})

	t.Run("bad toml", func(t *testing.T) {
		path := writeConfigFile(t, "[server\nport=")
		_, err := LoadFromFiles(path)
		assert.Error(t, err)
	})

	t.Run("invalid log level", func(t *testing.T) {
		path := writeConfigFile(t, "[logging]\nlevel = \"verbose\"\n")
		_, err := LoadFromFiles(path)
		assert.Error(t, err)
	})
}

func TestApplyFlagOverrides(t *testing.T) {
	config := NewDefaultConfig()

	ApplyFlagOverrides(config, 5050, "0.0.0.0")
	assert.Equal(t, 5050, config.Server.Port)
	assert.Equal(t, "0.0.0.0", config.Server.Host)

	// Zero values leave the config untouched
	ApplyFlagOverrides(config, 0, "")
	assert.Equal(t, 5050, config.Server.Port)
	assert.Equal(t, "0.0.0.0", config.Server.Host)
}
