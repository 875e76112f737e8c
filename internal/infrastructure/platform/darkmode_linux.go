//go:build linux

package platform

import (
	"os/exec"
	"strings"
)

// DarkMode reports whether the desktop prefers a dark color scheme, via the
// freedesktop gsettings key. Desktops without gsettings read as light.
func DarkMode() bool {
	out, err := exec.Command("gsettings", "get",
		"org.gnome.desktop.interface", "color-scheme").Output()
	if err != nil {
		return false
	}
	return strings.Contains(string(out), "dark")
}
