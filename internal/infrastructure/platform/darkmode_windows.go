//go:build windows

package platform

import "golang.org/x/sys/windows/registry"

// DarkMode reports whether Windows apps are themed dark. AppsUseLightTheme
// is 0 when dark mode is active; a missing key means light mode.
func DarkMode() bool {
	key, err := registry.OpenKey(registry.CURRENT_USER,
		`Software\Microsoft\Windows\CurrentVersion\Themes\Personalize`, registry.QUERY_VALUE)
	if err != nil {
		return false
	}
	defer key.Close()

	light, _, err := key.GetIntegerValue("AppsUseLightTheme")
	if err != nil {
		return false
	}
	return light == 0
}
