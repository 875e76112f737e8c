package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/paintapp/paintapp/pkg/logger"
)

// DevOverrides are optional developer settings read from
// <UserConfigDir>/PaintApp/paintapp.dev.yaml. A missing file yields the
// zero value; a malformed one is logged and ignored.
type DevOverrides struct {
	// LogLevel overrides the default log level (debug/info/warn/error).
	LogLevel string `yaml:"log_level"`

	// OpenDevTools opens the devtools on startup even in packaged runs.
	OpenDevTools bool `yaml:"open_devtools"`

	// ContentURL points the configuration loader at a live content
	// server instead of the embedded assets.
	ContentURL string `yaml:"content_url"`
}

// LoadDevOverrides reads the developer overrides file, if present.
func LoadDevOverrides() DevOverrides {
	var overrides DevOverrides

	base, err := os.UserConfigDir()
	if err != nil {
		return overrides
	}
	path := filepath.Join(base, AppName, "paintapp.dev.yaml")

	data, err := os.ReadFile(path)
	if err != nil {
		return overrides
	}
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		logger.Warn("ignoring malformed dev overrides", logger.Attrs{
			"path":  path,
			"error": err.Error(),
		})
		return DevOverrides{}
	}
	logger.Debug("loaded dev overrides", logger.Attrs{"path": path})
	return overrides
}
