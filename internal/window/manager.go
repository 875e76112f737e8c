package window

import (
	"fmt"
	"sync"

	"github.com/paintapp/paintapp/internal/infrastructure/config"
	"github.com/paintapp/paintapp/internal/infrastructure/platform"
	"github.com/paintapp/paintapp/internal/menus"
	"github.com/paintapp/paintapp/internal/store"
	"github.com/paintapp/paintapp/pkg/logger"
)

// CreateOptions carries everything the toolkit needs to construct the
// main window. Bounds arrive already clamped.
type CreateOptions struct {
	Bounds   store.WindowBounds
	DarkMode bool
	IconPath string
}

// Factory constructs (or, for the wails backend, binds) the native window.
type Factory func(opts CreateOptions) (HostWindow, error)

// Manager is the singleton holder of the main window.
type Manager struct {
	mu      sync.Mutex
	store   *store.Store
	factory Factory
	main    HostWindow
}

// NewManager builds a manager over a preference store and a window
// factory. Tests pass a fake factory.
func NewManager(st *store.Store, factory Factory) *Manager {
	return &Manager{store: st, factory: factory}
}

// CreateMainWindow restores bounds from the store, constructs the window,
// wires its handlers, attaches the platform menu, and registers the
// debounced bounds save exactly once. If a live window already exists it
// is shown instead.
func (m *Manager) CreateMainWindow() (HostWindow, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.main != nil && !m.main.Destroyed() {
		m.main.Show()
		return m.main, nil
	}

	if !config.SwitchesApplied() {
		logger.Warn("window created before command line switches were applied")
	}

	// Bounds read precedes construction; GetSavedWindowBounds clamps to
	// the configured minimum.
	bounds := m.store.GetSavedWindowBounds()
	darkMode := config.DarkMode()

	win, err := m.factory(CreateOptions{
		Bounds:   bounds,
		DarkMode: darkMode,
		IconPath: config.IconPath(),
	})
	if err != nil {
		return nil, fmt.Errorf("create main window: %w", err)
	}
	win.SetSize(bounds.Width, bounds.Height)

	win.On(SignalDOMReady, func() {
		if config.IsDev() {
			win.OpenDevTools()
		}
	})
	win.On(SignalClosed, func() {
		m.clear(win)
	})
	win.On(SignalFocus, func() {
		logger.Debug("main window focused")
	})

	m.store.SaveWindowBounds(win)
	m.attachMenu(win)
	m.main = win

	logger.Info("main window created", logger.Attrs{
		"width":    bounds.Width,
		"height":   bounds.Height,
		"darkMode": darkMode,
	})
	return win, nil
}

// attachMenu applies the platform-appropriate application menu.
func (m *Manager) attachMenu(win HostWindow) {
	switch {
	case platform.IsMac():
		template := menus.ApplicationMenu(func() {
			if _, err := m.CreateMainWindow(); err != nil {
				logger.Error("new window failed", logger.Attrs{"error": err.Error()})
			}
		}, config.Window.Default)
		win.SetApplicationMenu(menus.ToNative(template, m.Dispatch, func(size config.Size) {
			if w := m.GetMainWindow(); w != nil {
				w.SetSize(size.Width, size.Height)
			}
		}))

	case platform.IsWindows():
		// No menu bar on Windows; just claim the taskbar identity.
		setAppUserModelID(config.AppID)

	default:
		// Linux keeps the toolkit default.
	}
}

// Dispatch posts a message to the focused (main) window's renderer. Menu
// clicks land here.
func (m *Manager) Dispatch(channel string, args ...interface{}) {
	win := m.GetMainWindow()
	if win == nil || win.Destroyed() {
		logger.Warn("dropping message, no live window", logger.Attrs{"channel": channel})
		return
	}
	win.Emit(channel, args...)
}

func (m *Manager) clear(win HostWindow) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.main == win {
		m.main = nil
		logger.Info("main window closed")
	}
}

// GetMainWindow returns the current window, or nil when none exists.
func (m *Manager) GetMainWindow() HostWindow {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.main
}

// HasMainWindow reports whether a live window exists.
func (m *Manager) HasMainWindow() bool {
	win := m.GetMainWindow()
	return win != nil && !win.Destroyed()
}

// CloseMainWindow destroys the window if one exists.
func (m *Manager) CloseMainWindow() {
	if win := m.GetMainWindow(); win != nil {
		win.Close()
	}
}
