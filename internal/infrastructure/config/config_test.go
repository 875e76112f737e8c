package config

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyCommandLineSwitches(t *testing.T) {
	t.Setenv("WEBVIEW2_ADDITIONAL_BROWSER_ARGUMENTS", "")

	ApplyCommandLineSwitches()
	assert.True(t, SwitchesApplied())

	args := os.Getenv("WEBVIEW2_ADDITIONAL_BROWSER_ARGUMENTS")
	require.NotEmpty(t, args)

	// Order is part of the contract: switches are forwarded as declared.
	parts := strings.Split(args, " ")
	require.Len(t, parts, len(CommandLineSwitches))
	assert.Equal(t, "--disable-background-timer-throttling", parts[0])
	assert.Equal(t, "--enable-features=VaapiVideoDecoder,VaapiVideoEncoder", parts[2])

	for _, part := range parts {
		assert.True(t, strings.HasPrefix(part, "--"), "switch %q lost its prefix", part)
	}
}

func TestIsDev(t *testing.T) {
	original := BuildMode
	defer func() { BuildMode = original }()

	BuildMode = "dev"
	assert.False(t, IsPackaged())
	assert.True(t, IsDev(), "unpackaged runs are always dev")

	BuildMode = "production"
	t.Setenv("PAINTAPP_DEV", "")
	assert.True(t, IsPackaged())
	assert.False(t, IsDev())

	t.Setenv("PAINTAPP_DEV", "1")
	assert.True(t, IsDev(), "PAINTAPP_DEV overrides a packaged build")
}

func TestWindowGeometry(t *testing.T) {
	assert.Equal(t, Size{Width: 1024, Height: 768}, Window.Default)
	assert.Equal(t, Size{Width: 380, Height: 440}, Window.Min)
}

func TestBackgroundColor(t *testing.T) {
	dark := BackgroundColor(true)
	assert.Equal(t, uint8(30), dark.R)
	assert.Equal(t, uint8(30), dark.G)
	assert.Equal(t, uint8(30), dark.B)

	light := BackgroundColor(false)
	assert.Equal(t, uint8(255), light.R)
}

func TestMacOptionsAppearance(t *testing.T) {
	dark := MacOptions(true)
	light := MacOptions(false)
	assert.NotEqual(t, dark.Appearance, light.Appearance)
	assert.True(t, dark.WindowIsTranslucent)
	require.NotNil(t, dark.About)
	assert.Equal(t, AppName, dark.About.Title)
}

func TestWindowsOptionsTheme(t *testing.T) {
	dark := WindowsOptions(true)
	light := WindowsOptions(false)
	assert.NotEqual(t, dark.Theme, light.Theme)
	require.NotNil(t, dark.CustomTheme)
	require.NotNil(t, light.CustomTheme)
}
