package window

import (
	"context"
	"sync"

	"github.com/wailsapp/wails/v2/pkg/menu"
	"github.com/wailsapp/wails/v2/pkg/runtime"

	"github.com/paintapp/paintapp/internal/store"
	"github.com/paintapp/paintapp/pkg/logger"
)

// wailsWindow adapts the wails runtime to HostWindow. Wails owns one
// window per process; this wrapper binds its runtime context after
// OnStartup fires.
//
// Wails does not surface native resize/move to Go, so the entry page
// relays them: its JS listens for window resize/drag and emits
// "window:resized" / "window:moved" runtime events, which map onto the
// resize and move signals here.
type wailsWindow struct {
	ctx context.Context

	mu        sync.Mutex
	handlers  map[string][]*signalHandler
	destroyed bool
	nextID    int
}

type signalHandler struct {
	id int
	fn func()
}

// NewWailsWindow wraps the wails runtime context in a HostWindow.
func NewWailsWindow(ctx context.Context) HostWindow {
	w := &wailsWindow{
		ctx:      ctx,
		handlers: map[string][]*signalHandler{},
	}
	runtime.EventsOn(ctx, "window:resized", func(...interface{}) {
		w.Dispatch(SignalResize)
	})
	runtime.EventsOn(ctx, "window:moved", func(...interface{}) {
		w.Dispatch(SignalMove)
	})
	return w
}

func (w *wailsWindow) Bounds() store.WindowBounds {
	width, height := runtime.WindowGetSize(w.ctx)
	x, y := runtime.WindowGetPosition(w.ctx)
	return store.WindowBounds{Width: width, Height: height, X: &x, Y: &y}
}

func (w *wailsWindow) SetSize(width, height int) {
	runtime.WindowSetSize(w.ctx, width, height)
}

func (w *wailsWindow) On(signal string, fn func()) func() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.nextID++
	h := &signalHandler{id: w.nextID, fn: fn}
	w.handlers[signal] = append(w.handlers[signal], h)
	id := h.id
	return func() {
		w.mu.Lock()
		defer w.mu.Unlock()
		hs := w.handlers[signal]
		for i, other := range hs {
			if other.id == id {
				w.handlers[signal] = append(hs[:i], hs[i+1:]...)
				return
			}
		}
	}
}

// Dispatch fires a signal's handlers. The app layer calls this from the
// wails lifecycle hooks (dom-ready, before-close).
func (w *wailsWindow) Dispatch(signal string) {
	w.mu.Lock()
	if signal == SignalClosed {
		w.destroyed = true
	}
	hs := append([]*signalHandler(nil), w.handlers[signal]...)
	w.mu.Unlock()
	for _, h := range hs {
		h.fn()
	}
}

func (w *wailsWindow) Emit(channel string, args ...interface{}) {
	runtime.EventsEmit(w.ctx, channel, args...)
}

func (w *wailsWindow) SetApplicationMenu(m *menu.Menu) {
	runtime.MenuSetApplicationMenu(w.ctx, m)
}

func (w *wailsWindow) OpenDevTools() {
	// The wails inspector is toggled by the user (right-click or F12 in
	// debug builds); there is no runtime call to force it open.
	logger.Debug("devtools available via inspector shortcut")
}

func (w *wailsWindow) Destroyed() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.destroyed
}

// Close marks the window destroyed and fires its closed handlers. The
// actual host shutdown belongs to the lifecycle controller, which
// subscribes to the closed signal; nothing here quits directly.
func (w *wailsWindow) Close() {
	w.Dispatch(SignalClosed)
}

func (w *wailsWindow) Show() {
	runtime.WindowShow(w.ctx)
}

func (w *wailsWindow) Hide() {
	runtime.WindowHide(w.ctx)
}
