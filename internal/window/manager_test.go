package window

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	wailsmenu "github.com/wailsapp/wails/v2/pkg/menu"

	"github.com/paintapp/paintapp/internal/infrastructure/config"
	"github.com/paintapp/paintapp/internal/store"
)

type testWindow struct {
	bounds    store.WindowBounds
	destroyed bool
	shown     int
	hidden    int
	sized     []store.WindowBounds
	handlers  map[string][]func()
	emitted   []string
}

func newTestWindow() *testWindow {
	return &testWindow{handlers: map[string][]func(){}}
}

func (w *testWindow) Bounds() store.WindowBounds { return w.bounds }

func (w *testWindow) SetSize(width, height int) {
	w.sized = append(w.sized, store.WindowBounds{Width: width, Height: height})
	w.bounds.Width, w.bounds.Height = width, height
}

func (w *testWindow) On(signal string, fn func()) func() {
	w.handlers[signal] = append(w.handlers[signal], fn)
	return func() {}
}

func (w *testWindow) fire(signal string) {
	for _, fn := range w.handlers[signal] {
		fn()
	}
}

func (w *testWindow) Emit(channel string, _ ...interface{}) {
	w.emitted = append(w.emitted, channel)
}

func (w *testWindow) SetApplicationMenu(*wailsmenu.Menu) {}
func (w *testWindow) OpenDevTools()                      {}
func (w *testWindow) Destroyed() bool                    { return w.destroyed }
func (w *testWindow) Close()                             { w.destroyed = true; w.fire(SignalClosed) }
func (w *testWindow) Show()                              { w.shown++ }
func (w *testWindow) Hide()                              { w.hidden++ }

func newTestManager(t *testing.T) (*Manager, *testWindow) {
	t.Helper()
	st := store.New(filepath.Join(t.TempDir(), store.FileName))
	win := newTestWindow()
	factory := func(opts CreateOptions) (HostWindow, error) {
		win.bounds = opts.Bounds
		return win, nil
	}
	return NewManager(st, factory), win
}

func TestCreateMainWindowRestoresBounds(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, store.FileName)
	require.NoError(t, os.WriteFile(path,
		[]byte(`{"windowBounds":{"width":1280,"height":900,"x":15,"y":25}}`), 0o644))

	var got CreateOptions
	m := NewManager(store.New(path), func(opts CreateOptions) (HostWindow, error) {
		got = opts
		w := newTestWindow()
		w.bounds = opts.Bounds
		return w, nil
	})

	win, err := m.CreateMainWindow()
	require.NoError(t, err)
	require.NotNil(t, win)
	assert.Equal(t, 1280, got.Bounds.Width)
	assert.Equal(t, 900, got.Bounds.Height)
	require.NotNil(t, got.Bounds.X)
	assert.Equal(t, 15, *got.Bounds.X)
}

func TestCreateMainWindowClampsSmallSavedBounds(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, store.FileName)
	require.NoError(t, os.WriteFile(path,
		[]byte(`{"windowBounds":{"width":200,"height":200}}`), 0o644))

	var got CreateOptions
	m := NewManager(store.New(path), func(opts CreateOptions) (HostWindow, error) {
		got = opts
		w := newTestWindow()
		w.bounds = opts.Bounds
		return w, nil
	})

	_, err := m.CreateMainWindow()
	require.NoError(t, err)
	assert.Equal(t, config.Window.Min.Width, got.Bounds.Width)
	assert.Equal(t, config.Window.Min.Height, got.Bounds.Height)
}

func TestCreateMainWindowIsSingleton(t *testing.T) {
	m, win := newTestManager(t)

	first, err := m.CreateMainWindow()
	require.NoError(t, err)
	second, err := m.CreateMainWindow()
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, 1, win.shown, "existing window is shown, not rebuilt")
}

func TestCreateMainWindowAfterClose(t *testing.T) {
	m, win := newTestManager(t)

	_, err := m.CreateMainWindow()
	require.NoError(t, err)
	assert.True(t, m.HasMainWindow())

	win.Close()
	assert.False(t, m.HasMainWindow())
	assert.Nil(t, m.GetMainWindow())

	win.destroyed = false
	recreated, err := m.CreateMainWindow()
	require.NoError(t, err)
	assert.NotNil(t, recreated)
	assert.True(t, m.HasMainWindow())
}

func TestCreateMainWindowFactoryError(t *testing.T) {
	st := store.New(filepath.Join(t.TempDir(), store.FileName))
	m := NewManager(st, func(CreateOptions) (HostWindow, error) {
		return nil, errors.New("toolkit unavailable")
	})

	_, err := m.CreateMainWindow()
	require.Error(t, err)
	assert.False(t, m.HasMainWindow())
}

func TestDispatchDeliversToLiveWindow(t *testing.T) {
	m, win := newTestManager(t)
	_, err := m.CreateMainWindow()
	require.NoError(t, err)

	m.Dispatch("trigger-action", "undo")
	assert.Equal(t, []string{"trigger-action"}, win.emitted)
}

func TestDispatchDroppedWithoutWindow(t *testing.T) {
	m, win := newTestManager(t)

	m.Dispatch("trigger-action", "undo")
	assert.Empty(t, win.emitted)

	_, err := m.CreateMainWindow()
	require.NoError(t, err)
	win.Close()

	m.Dispatch("trigger-action", "redo")
	assert.Empty(t, win.emitted)
}

func TestCloseMainWindow(t *testing.T) {
	m, win := newTestManager(t)
	_, err := m.CreateMainWindow()
	require.NoError(t, err)

	m.CloseMainWindow()
	assert.True(t, win.destroyed)
	assert.False(t, m.HasMainWindow())
}
