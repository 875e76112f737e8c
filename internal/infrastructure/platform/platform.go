// Package platform answers questions about the host OS: which platform the
// process runs on and whether the system UI is currently in dark mode.
//
// Dark-mode detection is build-tagged per OS, one _darwin/_windows/_linux
// implementation each, so cross-compiles never drag in foreign syscalls.
package platform

import "runtime"

// Tag identifies the host platform. Derived from runtime.GOOS, never
// persisted.
type Tag string

const (
	Mac     Tag = "mac"
	Windows Tag = "windows"
	Linux   Tag = "linux"
)

// Current returns the tag for the running OS. Anything that is not darwin
// or windows is treated as linux.
func Current() Tag {
	switch runtime.GOOS {
	case "darwin":
		return Mac
	case "windows":
		return Windows
	default:
		return Linux
	}
}

// IsMac reports whether the host is macOS.
func IsMac() bool { return Current() == Mac }

// IsWindows reports whether the host is Windows.
func IsWindows() bool { return Current() == Windows }

// IsLinux reports whether the host is Linux (or any other non-mac,
// non-windows OS).
func IsLinux() bool { return Current() == Linux }
