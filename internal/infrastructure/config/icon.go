package config

import (
	"os"
	"path/filepath"

	"github.com/paintapp/paintapp/internal/infrastructure/platform"
)

// IconPath resolves the application icon on disk. Packaged builds keep the
// icon next to the executable (inside the .app Resources dir on mac);
// unpackaged runs read it from the build tree.
func IconPath() string {
	if !IsPackaged() {
		return filepath.Join("build", "appicon.png")
	}
	exe, err := os.Executable()
	if err != nil {
		return filepath.Join("build", "appicon.png")
	}
	dir := filepath.Dir(exe)
	if platform.IsMac() {
		// Contents/MacOS/<exe> -> Contents/Resources/appicon.png
		return filepath.Join(dir, "..", "Resources", "appicon.png")
	}
	return filepath.Join(dir, "appicon.png")
}
