// Package store persists user preferences as JSON in the per-user config
// directory. The only consumer today is the window manager, which saves
// and restores the main window bounds; the store itself is a generic
// key/value file so future preferences land in the same place.
package store

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/bep/debounce"

	"github.com/paintapp/paintapp/internal/infrastructure/config"
	"github.com/paintapp/paintapp/pkg/logger"
)

// FileName is the settings file kept under <UserConfigDir>/PaintApp/.
const FileName = "paintapp-config.json"

// boundsKey is the record the window bounds live under.
const boundsKey = "windowBounds"

// saveDelay is the quiescent interval for coalescing resize/move bursts
// into a single write.
const saveDelay = 500 * time.Millisecond

// WindowBounds is the persisted window rectangle. X and Y are optional:
// absent on first run, letting the OS place the window.
type WindowBounds struct {
	Width  int  `json:"width"`
	Height int  `json:"height"`
	X      *int `json:"x,omitempty"`
	Y      *int `json:"y,omitempty"`
}

// BoundsWindow is the slice of the host window the store needs: current
// bounds plus resize/move/closed signals. The window package provides the
// real implementation; tests provide fakes.
type BoundsWindow interface {
	// Bounds returns the window's current rectangle.
	Bounds() WindowBounds

	// On registers fn for a signal ("resize", "move", "closed") and
	// returns an unsubscribe function.
	On(signal string, fn func()) func()
}

// Store is the JSON-backed preference store.
type Store struct {
	mu       sync.Mutex
	path     string
	defaults WindowBounds
	min      config.Size
	data     map[string]json.RawMessage

	// debounced coalesces bounds writes; closed suppresses a pending
	// write scheduled before the window went away.
	debounced func(func())
	closed    bool
}

var (
	instance *Store
	instOnce sync.Once
)

// Get returns the process-wide store, constructing it on first access with
// the configured defaults. Read errors substitute defaults and are logged,
// never fatal.
func Get() *Store {
	instOnce.Do(func() {
		base, err := os.UserConfigDir()
		if err != nil {
			logger.Error("user config dir unavailable, preferences will not persist",
				logger.Attrs{"error": err.Error()})
			base = os.TempDir()
		}
		dir := filepath.Join(base, config.AppName)
		instance = New(filepath.Join(dir, FileName))
	})
	return instance
}

// New constructs a store bound to an explicit file path. Tests use this to
// get independent instances.
func New(path string) *Store {
	s := &Store{
		path: path,
		defaults: WindowBounds{
			Width:  config.Window.Default.Width,
			Height: config.Window.Default.Height,
		},
		min:       config.Window.Min,
		data:      make(map[string]json.RawMessage),
		debounced: debounce.New(saveDelay),
	}
	s.load()
	return s
}

// load reads the backing file. Missing file is the normal first-run case;
// anything else logs and falls back to defaults.
func (s *Store) load() {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			logger.Warn("failed to read preferences, using defaults", logger.Attrs{
				"path":  s.path,
				"error": err.Error(),
			})
		}
		return
	}
	if err := json.Unmarshal(raw, &s.data); err != nil {
		logger.Warn("preferences file is corrupt, using defaults", logger.Attrs{
			"path":  s.path,
			"error": err.Error(),
		})
		s.data = make(map[string]json.RawMessage)
	}
}

// persist writes the whole record back to disk.
func (s *Store) persist() {
	raw, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		logger.Error("failed to encode preferences", logger.Attrs{"error": err.Error()})
		return
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		logger.Error("failed to create config dir", logger.Attrs{"error": err.Error()})
		return
	}
	if err := os.WriteFile(s.path, raw, 0o644); err != nil {
		logger.Error("failed to write preferences", logger.Attrs{
			"path":  s.path,
			"error": err.Error(),
		})
	}
}

// GetSavedWindowBounds returns the persisted bounds merged over the
// defaults, clamped so width and height never fall below the configured
// minimum.
func (s *Store) GetSavedWindowBounds() WindowBounds {
	s.mu.Lock()
	defer s.mu.Unlock()

	bounds := s.defaults
	if raw, ok := s.data[boundsKey]; ok {
		if err := json.Unmarshal(raw, &bounds); err != nil {
			logger.Warn("ignoring malformed window bounds", logger.Attrs{"error": err.Error()})
			bounds = s.defaults
		}
	}
	if bounds.Width < s.min.Width {
		bounds.Width = s.min.Width
	}
	if bounds.Height < s.min.Height {
		bounds.Height = s.min.Height
	}
	return bounds
}

// SaveWindowBounds subscribes to the window's resize and move signals.
// Each signal schedules a write 500 ms out, superseding any pending one,
// so a drag produces exactly one write once it quiesces. The closed signal
// cancels a pending write without flushing.
func (s *Store) SaveWindowBounds(win BoundsWindow) {
	s.mu.Lock()
	s.closed = false
	s.mu.Unlock()

	save := func() {
		s.mu.Lock()
		if s.closed {
			s.mu.Unlock()
			return
		}
		bounds := win.Bounds()
		raw, err := json.Marshal(bounds)
		if err != nil {
			s.mu.Unlock()
			logger.Error("failed to encode window bounds", logger.Attrs{"error": err.Error()})
			return
		}
		s.data[boundsKey] = raw
		s.persist()
		s.mu.Unlock()
		logger.Debug("saved window bounds", logger.Attrs{
			"width":  bounds.Width,
			"height": bounds.Height,
		})
	}

	schedule := func() { s.debounced(save) }
	win.On("resize", schedule)
	win.On("move", schedule)
	win.On("closed", func() {
		s.mu.Lock()
		s.closed = true
		s.mu.Unlock()
	})
}

// Set stores an arbitrary value under key and persists immediately.
func (s *Store) Set(key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = raw
	s.persist()
	return nil
}

// GetInto decodes the value under key into out. Returns false when the key
// is absent.
func (s *Store) GetInto(key string, out interface{}) (bool, error) {
	s.mu.Lock()
	raw, ok := s.data[key]
	s.mu.Unlock()
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, out)
}

// ClearStore wipes every stored key. Diagnostics only.
func (s *Store) ClearStore() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = make(map[string]json.RawMessage)
	s.persist()
	logger.Info("preferences cleared")
}

// Path returns the backing file location.
func (s *Store) Path() string {
	return s.path
}
