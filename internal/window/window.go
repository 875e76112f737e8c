// Package window owns the main application window: creation with restored
// bounds, signal wiring, menu attachment, and the singleton accessor. The
// HostWindow interface isolates the rest of the host from the windowing
// toolkit so the manager and the IPC handlers can be tested with fakes.
package window

import (
	"github.com/wailsapp/wails/v2/pkg/menu"

	"github.com/paintapp/paintapp/internal/store"
)

// Window signals. Resize and move feed the debounced bounds save; closed
// clears the singleton and cancels pending writes.
const (
	SignalResize   = "resize"
	SignalMove     = "move"
	SignalClosed   = "closed"
	SignalFocus    = "focus"
	SignalDOMReady = "dom-ready"
)

// HostWindow is the slice of the native window the host needs.
type HostWindow interface {
	// Bounds returns the current window rectangle.
	Bounds() store.WindowBounds

	// SetSize resizes the window.
	SetSize(width, height int)

	// On registers fn for a signal and returns an unsubscribe function.
	On(signal string, fn func()) func()

	// Emit posts a message to this window's renderer.
	Emit(channel string, args ...interface{})

	// SetApplicationMenu attaches a native menu, where the platform
	// supports one.
	SetApplicationMenu(m *menu.Menu)

	// OpenDevTools opens the inspector, where the build supports it.
	OpenDevTools()

	// Destroyed reports whether the native window is gone. IPC handlers
	// check this before any privileged action.
	Destroyed() bool

	// Close destroys the window.
	Close()

	// Show raises and focuses the window.
	Show()

	// Hide conceals the window without destroying it. The mac
	// stay-resident flow hides on close and shows again on activate.
	Hide()
}
