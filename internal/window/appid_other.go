//go:build !windows

package window

// setAppUserModelID is Windows-only; a no-op elsewhere.
func setAppUserModelID(string) {}
