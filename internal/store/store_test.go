package store

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paintapp/paintapp/internal/infrastructure/config"
)

// fakeBoundsWindow drives the save protocol from tests.
type fakeBoundsWindow struct {
	mu          sync.Mutex
	bounds      WindowBounds
	boundsReads int
	handlers    map[string][]func()
}

func newFakeBoundsWindow(bounds WindowBounds) *fakeBoundsWindow {
	return &fakeBoundsWindow{
		bounds:   bounds,
		handlers: map[string][]func(){},
	}
}

func (w *fakeBoundsWindow) Bounds() WindowBounds {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.boundsReads++
	return w.bounds
}

func (w *fakeBoundsWindow) reads() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.boundsReads
}

func (w *fakeBoundsWindow) setBounds(b WindowBounds) {
	w.mu.Lock()
	w.bounds = b
	w.mu.Unlock()
}

func (w *fakeBoundsWindow) On(signal string, fn func()) func() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.handlers[signal] = append(w.handlers[signal], fn)
	return func() {}
}

func (w *fakeBoundsWindow) fire(signal string) {
	w.mu.Lock()
	hs := append([]func(){}, w.handlers[signal]...)
	w.mu.Unlock()
	for _, fn := range hs {
		fn()
	}
}

func tempStore(t *testing.T) *Store {
	t.Helper()
	return New(filepath.Join(t.TempDir(), FileName))
}

func TestGetSavedWindowBoundsDefaults(t *testing.T) {
	s := tempStore(t)
	bounds := s.GetSavedWindowBounds()
	assert.Equal(t, config.Window.Default.Width, bounds.Width)
	assert.Equal(t, config.Window.Default.Height, bounds.Height)
	assert.Nil(t, bounds.X)
	assert.Nil(t, bounds.Y)
}

func TestGetSavedWindowBoundsClampsToMinimum(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path,
		[]byte(`{"windowBounds":{"width":200,"height":200}}`), 0o644))

	s := New(path)
	bounds := s.GetSavedWindowBounds()
	assert.Equal(t, config.Window.Min.Width, bounds.Width)
	assert.Equal(t, config.Window.Min.Height, bounds.Height)
}

func TestGetSavedWindowBoundsCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	s := New(path)
	bounds := s.GetSavedWindowBounds()
	assert.Equal(t, config.Window.Default.Width, bounds.Width)
}

func TestDebouncedSaveCoalesces(t *testing.T) {
	s := tempStore(t)
	x, y := 40, 80
	win := newFakeBoundsWindow(WindowBounds{Width: 900, Height: 700, X: &x, Y: &y})
	s.SaveWindowBounds(win)

	// A burst of resizes within the quiescent window must produce
	// exactly one persisted write.
	win.fire("resize")
	time.Sleep(100 * time.Millisecond)
	win.fire("resize")
	time.Sleep(100 * time.Millisecond)
	win.fire("resize")
	time.Sleep(200 * time.Millisecond)
	win.fire("resize")

	time.Sleep(800 * time.Millisecond)
	assert.Equal(t, 1, win.reads(), "expected a single coalesced write")

	reread := New(s.Path())
	bounds := reread.GetSavedWindowBounds()
	assert.Equal(t, 900, bounds.Width)
	assert.Equal(t, 700, bounds.Height)
}

func TestClosedCancelsPendingWrite(t *testing.T) {
	s := tempStore(t)
	win := newFakeBoundsWindow(WindowBounds{Width: 900, Height: 700})
	s.SaveWindowBounds(win)

	win.fire("resize")
	win.fire("closed")

	time.Sleep(800 * time.Millisecond)
	assert.Zero(t, win.reads(), "closed must cancel the pending write without flushing")

	_, err := os.Stat(s.Path())
	assert.True(t, os.IsNotExist(err), "nothing should have been written")
}

func TestWindowBoundsRoundTrip(t *testing.T) {
	s := tempStore(t)
	x, y := 120, 60
	win := newFakeBoundsWindow(WindowBounds{Width: 1280, Height: 800, X: &x, Y: &y})
	s.SaveWindowBounds(win)

	win.fire("move")
	time.Sleep(700 * time.Millisecond)

	reread := New(s.Path())
	bounds := reread.GetSavedWindowBounds()
	assert.Equal(t, 1280, bounds.Width)
	assert.Equal(t, 800, bounds.Height)
	require.NotNil(t, bounds.X)
	require.NotNil(t, bounds.Y)
	assert.Equal(t, 120, *bounds.X)
	assert.Equal(t, 60, *bounds.Y)
}

func TestSetAndGetInto(t *testing.T) {
	s := tempStore(t)
	require.NoError(t, s.Set("lastBrush", "texture"))

	var brush string
	found, err := s.GetInto("lastBrush", &brush)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "texture", brush)

	found, err = s.GetInto("missing", &brush)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestClearStore(t *testing.T) {
	s := tempStore(t)
	require.NoError(t, s.Set("lastBrush", "texture"))
	s.ClearStore()

	var brush string
	found, err := s.GetInto("lastBrush", &brush)
	require.NoError(t, err)
	assert.False(t, found)

	// Defaults still apply after a wipe.
	bounds := s.GetSavedWindowBounds()
	assert.Equal(t, config.Window.Default.Width, bounds.Width)
}

func TestSingletonIdentity(t *testing.T) {
	assert.Same(t, Get(), Get())
}
