//go:build windows

package lifecycle

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/paintapp/paintapp/pkg/logger"
)

// installerShimStartup handles Squirrel installer events. The installer
// relaunches the app with a --squirrel-* flag on install, update and
// uninstall; those runs only manage shortcuts and must exit without
// creating a window.
func installerShimStartup() bool {
	event := squirrelEvent(os.Args)
	if event == "" {
		return false
	}

	updater := updaterPath()
	if updater == "" {
		logger.Warn("squirrel event without Update.exe", logger.Attrs{"event": event})
		return true
	}

	exe := filepath.Base(mustExecutable())
	switch event {
	case "--squirrel-install", "--squirrel-updated":
		runUpdater(updater, "--createShortcut="+exe)
	case "--squirrel-uninstall":
		runUpdater(updater, "--removeShortcut="+exe)
	case "--squirrel-obsolete":
		// Nothing to do; exit so the updater can finish.
	}
	logger.Info("handled installer event", logger.Attrs{"event": event})
	return true
}

func squirrelEvent(args []string) string {
	for _, arg := range args[1:] {
		if strings.HasPrefix(arg, "--squirrel-") {
			return arg
		}
	}
	return ""
}

// updaterPath locates Update.exe one level above the versioned app dir,
// the Squirrel layout. Empty when not installed via the installer.
func updaterPath() string {
	exe := mustExecutable()
	if exe == "" {
		return ""
	}
	path := filepath.Join(filepath.Dir(exe), "..", "Update.exe")
	if _, err := os.Stat(path); err != nil {
		return ""
	}
	return path
}

func runUpdater(updater string, args ...string) {
	if err := exec.Command(updater, args...).Run(); err != nil {
		logger.Error("updater invocation failed", logger.Attrs{
			"args":  strings.Join(args, " "),
			"error": err.Error(),
		})
	}
}

func mustExecutable() string {
	exe, err := os.Executable()
	if err != nil {
		return ""
	}
	return exe
}
