package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadFromFile(t *testing.T) {
	path := writeConfig(t, `{"app_id":"123","token":"abc","sandbox":true,"timeout_seconds":30}`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "123", cfg.AppID)
	assert.Equal(t, "abc", cfg.Token)
	assert.True(t, cfg.Sandbox)
	assert.Equal(t, 30*time.Second, cfg.Timeout())
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `{"app_id":"123","token":"abc"}`)
	t.Setenv("QGUILD_TOKEN", "fromenv")
	t.Setenv("QGUILD_SANDBOX", "true")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "123", cfg.AppID)
	assert.Equal(t, "fromenv", cfg.Token)
	assert.True(t, cfg.Sandbox)
}

func TestLoadEnvOnly(t *testing.T) {
	t.Setenv("QGUILD_APP_ID", "42")
	t.Setenv("QGUILD_TOKEN", "tk")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "42", cfg.AppID)
	assert.Equal(t, "tk", cfg.Token)
}

func TestLoadMissingCredentials(t *testing.T) {
	path := writeConfig(t, `{"app_id":"123"}`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "token")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}

func TestTimeoutDefault(t *testing.T) {
	cfg := &Config{}
	assert.Equal(t, 10*time.Second, cfg.Timeout())
}
