//go:build !darwin && !windows && !linux

package platform

// DarkMode always reports light mode on platforms without a probe.
func DarkMode() bool { return false }
