//go:build darwin

package platform

import (
	"os/exec"
	"strings"
)

// DarkMode reports whether macOS is using the dark appearance. The
// AppleInterfaceStyle default only exists when dark mode is active, so a
// failed read means light mode.
func DarkMode() bool {
	out, err := exec.Command("defaults", "read", "-g", "AppleInterfaceStyle").Output()
	if err != nil {
		return false
	}
	return strings.Contains(strings.ToLower(string(out)), "dark")
}
