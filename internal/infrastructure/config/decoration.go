package config

import (
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/linux"
	"github.com/wailsapp/wails/v2/pkg/options/mac"
	"github.com/wailsapp/wails/v2/pkg/options/windows"

	"github.com/paintapp/paintapp/internal/infrastructure/platform"
)

// BackgroundColor picks the window background from the system dark-mode
// flag at construction time. Re-themeing a live window is the renderer's
// job via the theme-changed channel.
func BackgroundColor(darkMode bool) *options.RGBA {
	if darkMode {
		return &options.RGBA{R: 30, G: 30, B: 30, A: 255}
	}
	return &options.RGBA{R: 255, G: 255, B: 255, A: 255}
}

// MacOptions returns the macOS window decoration: hidden-inset titlebar
// over a translucent, appearance-matched window.
func MacOptions(darkMode bool) *mac.Options {
	appearance := mac.NSAppearanceNameAqua
	if darkMode {
		appearance = mac.NSAppearanceNameDarkAqua
	}
	return &mac.Options{
		TitleBar:             mac.TitleBarHiddenInset(),
		Appearance:           appearance,
		WindowIsTranslucent:  true,
		WebviewIsTransparent: false,
		About: &mac.AboutInfo{
			Title:   AppName,
			Message: "A desktop painting application.",
		},
	}
}

// WindowsOptions returns the Windows decoration: theme follows the system
// flag, with titlebar overlay colors derived from it.
func WindowsOptions(darkMode bool) *windows.Options {
	theme := windows.Light
	custom := &windows.ThemeSettings{
		LightModeTitleBar:  windows.RGB(250, 250, 250),
		LightModeTitleText: windows.RGB(32, 32, 32),
		LightModeBorder:    windows.RGB(220, 220, 220),
	}
	if darkMode {
		theme = windows.Dark
		custom = &windows.ThemeSettings{
			DarkModeTitleBar:  windows.RGB(32, 32, 32),
			DarkModeTitleText: windows.RGB(240, 240, 240),
			DarkModeBorder:    windows.RGB(60, 60, 60),
		}
	}
	return &windows.Options{
		Theme:       theme,
		CustomTheme: custom,
	}
}

// LinuxOptions returns the Linux decoration. GTK draws its own titlebar,
// so this only names the program and keeps the GPU on.
func LinuxOptions() *linux.Options {
	return &linux.Options{
		ProgramName:      AppName,
		WebviewGpuPolicy: linux.WebviewGpuPolicyOnDemand,
	}
}

// DarkMode re-exports the platform probe so callers outside the
// infrastructure layer do not import platform directly.
func DarkMode() bool {
	return platform.DarkMode()
}
