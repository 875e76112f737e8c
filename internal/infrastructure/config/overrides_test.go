package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// overridesDir points os.UserConfigDir at a temp directory. XDG only
// steers the lookup on Linux.
func overridesDir(t *testing.T) string {
	t.Helper()
	if runtime.GOOS != "linux" {
		t.Skip("UserConfigDir redirection relies on XDG_CONFIG_HOME")
	}
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	appDir := filepath.Join(dir, AppName)
	require.NoError(t, os.MkdirAll(appDir, 0o755))
	return appDir
}

func TestLoadDevOverridesMissingFile(t *testing.T) {
	overridesDir(t)
	overrides := LoadDevOverrides()
	assert.Empty(t, overrides.LogLevel)
	assert.False(t, overrides.OpenDevTools)
}

func TestLoadDevOverrides(t *testing.T) {
	dir := overridesDir(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "paintapp.dev.yaml"),
		[]byte("log_level: debug\nopen_devtools: true\ncontent_url: https://localhost:8443\n"), 0o644))

	overrides := LoadDevOverrides()
	assert.Equal(t, "debug", overrides.LogLevel)
	assert.True(t, overrides.OpenDevTools)
	assert.Equal(t, "https://localhost:8443", overrides.ContentURL)
}

func TestLoadDevOverridesMalformed(t *testing.T) {
	dir := overridesDir(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "paintapp.dev.yaml"),
		[]byte("log_level: [unclosed"), 0o644))

	overrides := LoadDevOverrides()
	assert.Empty(t, overrides.LogLevel)
}
