// Package lifecycle sequences host startup and shutdown. The controller
// is the only component allowed to quit the host; everything else asks it.
//
// Startup order is fixed: installer shim gate (Windows), command-line
// switches, host ready, main window, signal subscriptions.
package lifecycle

import (
	"fmt"
	"sync"

	"github.com/paintapp/paintapp/internal/infrastructure/config"
	"github.com/paintapp/paintapp/internal/infrastructure/platform"
	"github.com/paintapp/paintapp/internal/window"
	"github.com/paintapp/paintapp/pkg/logger"
)

// Controller orchestrates the host lifecycle.
type Controller struct {
	manager  *window.Manager
	certs    *CertificatePolicy
	quit     func()
	quitOnce sync.Once
}

// NewController builds the controller. quit performs the actual host
// shutdown (runtime.Quit in production).
func NewController(manager *window.Manager, quit func()) *Controller {
	return &Controller{
		manager: manager,
		certs:   NewCertificatePolicy(config.IsDev()),
		quit:    quit,
	}
}

// PreInit runs before the host runtime starts. It gates on the Windows
// installer shim (a shim-handled startup means quit immediately, no
// window) and applies the command-line switches, which must precede any
// window creation. Returns true when startup is handled and the host
// should exit.
func (c *Controller) PreInit() bool {
	if platform.IsWindows() {
		if installerShimStartup() {
			logger.Info("installer shim handled startup, exiting")
			return true
		}
	}
	config.ApplyCommandLineSwitches()
	return false
}

// OnReady runs once the host runtime is up. Failure to create the window
// (the entry page path) is fatal.
func (c *Controller) OnReady() error {
	win, err := c.manager.CreateMainWindow()
	if err != nil {
		return fmt.Errorf("entry page failed to load: %w", err)
	}
	win.On(window.SignalClosed, c.HandleWindowAllClosed)
	return nil
}

// HandleCloseRequest runs when the user asks to close the main window,
// before the toolkit tears anything down. On mac the app stays resident:
// the window is hidden instead and the close is cancelled, so a later
// dock activation can bring it back. Returns true to cancel the close.
func (c *Controller) HandleCloseRequest() bool {
	if !platform.IsMac() {
		return false
	}
	win := c.manager.GetMainWindow()
	if win == nil || win.Destroyed() {
		return false
	}
	win.Hide()
	logger.Debug("window hidden, staying resident")
	return true
}

// HandleActivate implements the mac re-open semantics: clicking the dock
// icon shows the hidden window, or recreates it when none survives.
func (c *Controller) HandleActivate() {
	if win := c.manager.GetMainWindow(); win != nil && !win.Destroyed() {
		win.Show()
		return
	}
	win, err := c.manager.CreateMainWindow()
	if err != nil {
		logger.Error("reactivation failed", logger.Attrs{"error": err.Error()})
		return
	}
	win.On(window.SignalClosed, c.HandleWindowAllClosed)
}

// HandleWindowAllClosed quits the host when the last window closes,
// except on mac where the app stays resident.
func (c *Controller) HandleWindowAllClosed() {
	if platform.IsMac() {
		logger.Debug("all windows closed, staying resident")
		return
	}
	c.Quit()
}

// Certificates exposes the trust policy for the host's outbound TLS.
func (c *Controller) Certificates() *CertificatePolicy {
	return c.certs
}

// Quit shuts the host down exactly once.
func (c *Controller) Quit() {
	c.quitOnce.Do(func() {
		logger.Info("host shutting down")
		if c.quit != nil {
			c.quit()
		}
	})
}
