//go:build !windows

package lifecycle

import "github.com/paintapp/paintapp/pkg/logger"

// installerShimStartup is Windows-only; elsewhere startup continues
// normally.
func installerShimStartup() bool {
	logger.Debug("installer shim not present on this platform")
	return false
}
