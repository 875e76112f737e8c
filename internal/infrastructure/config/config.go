// Package config holds the static application constants: identity, window
// geometry, the Chromium command-line switches forwarded to the webview,
// and the per-platform window decoration. Everything here is fixed at
// build time; the only imperative entry point is ApplyCommandLineSwitches,
// which must run before any window exists.
package config

import (
	"os"
	"strings"
	"sync/atomic"

	"github.com/paintapp/paintapp/pkg/logger"
)

// BuildMode is stamped by the packager via -ldflags "-X ...=production".
// Anything else counts as an unpackaged developer run.
var BuildMode = "dev"

const (
	// AppName is the user-visible application name.
	AppName = "PaintApp"

	// AppID is the reverse-DNS identifier used for the user data
	// directory and, on Windows, the app user model id.
	AppID = "com.paintapp.desktop"

	// Version of the application.
	Version = "1.2.0"
)

// Size is a width/height pair in device-independent pixels.
type Size struct {
	Width  int
	Height int
}

// WindowConfig fixes the main window geometry.
type WindowConfig struct {
	// Default is the first-run window size.
	Default Size

	// Min is the floor below which restored bounds are clamped.
	Min Size
}

// Window is the immutable main-window geometry record.
var Window = WindowConfig{
	Default: Size{Width: 1024, Height: 768},
	Min:     Size{Width: 380, Height: 440},
}

// CommandLineSwitch is one Chromium switch, with an optional value.
type CommandLineSwitch struct {
	Name  string
	Value string
}

// CommandLineSwitches are forwarded to the embedded webview in order.
var CommandLineSwitches = []CommandLineSwitch{
	{Name: "disable-background-timer-throttling"},
	{Name: "disable-renderer-backgrounding"},
	{Name: "enable-features", Value: "VaapiVideoDecoder,VaapiVideoEncoder"},
	{Name: "disable-software-rasterizer"},
}

// webviewArgsEnv is how WebView2 picks up extra browser arguments; the
// WebKit backends read the same assembled string from our own variable.
const webviewArgsEnv = "WEBVIEW2_ADDITIONAL_BROWSER_ARGUMENTS"

var switchesApplied atomic.Bool

// ApplyCommandLineSwitches exports the configured switches to the webview
// environment. The lifecycle controller calls this exactly once, strictly
// before the first window is created.
func ApplyCommandLineSwitches() {
	parts := make([]string, 0, len(CommandLineSwitches))
	for _, sw := range CommandLineSwitches {
		arg := "--" + sw.Name
		if sw.Value != "" {
			arg += "=" + sw.Value
		}
		parts = append(parts, arg)
	}
	args := strings.Join(parts, " ")
	if err := os.Setenv(webviewArgsEnv, args); err != nil {
		logger.Warn("failed to export webview switches", logger.Attrs{"error": err.Error()})
		return
	}
	switchesApplied.Store(true)
	logger.Debug("applied command line switches", logger.Attrs{"args": args})
}

// SwitchesApplied reports whether ApplyCommandLineSwitches has run. The
// window manager asserts this before constructing the window.
func SwitchesApplied() bool {
	return switchesApplied.Load()
}

// IsPackaged reports whether this is a packaged production build.
func IsPackaged() bool {
	return BuildMode == "production"
}

// IsDev reports whether developer behavior (devtools, debug logging,
// certificate overrides) is enabled: any unpackaged run, or a packaged one
// with PAINTAPP_DEV set.
func IsDev() bool {
	return !IsPackaged() || os.Getenv("PAINTAPP_DEV") != ""
}
