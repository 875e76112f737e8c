// Package app is the composition root: it wires the logger, the store,
// the event bus, the IPC bridge and host handlers, the window manager and
// the lifecycle controller, and exposes the renderer-facing methods wails
// binds into the page.
package app

import (
	"context"
	"fmt"
	"io/fs"
	"time"

	wailsruntime "github.com/wailsapp/wails/v2/pkg/runtime"

	"github.com/paintapp/paintapp/internal/infrastructure/config"
	"github.com/paintapp/paintapp/internal/ipc"
	"github.com/paintapp/paintapp/internal/lifecycle"
	"github.com/paintapp/paintapp/internal/paint"
	"github.com/paintapp/paintapp/internal/store"
	"github.com/paintapp/paintapp/internal/window"
	"github.com/paintapp/paintapp/pkg/events"
	"github.com/paintapp/paintapp/pkg/logger"
)

// App owns every host-side component for the process lifetime.
type App struct {
	ctx context.Context

	assets     fs.FS
	bus        *events.Bus
	store      *store.Store
	bridge     *ipc.Bridge
	loader     *paint.Loader
	manager    *window.Manager
	host       *ipc.Host
	controller *lifecycle.Controller

	// mainWindow keeps the concrete wrapper so lifecycle hooks can
	// dispatch its signals.
	mainWindow interface{ Dispatch(string) }
}

// contentTimeout bounds requests to a developer content server.
const contentTimeout = 10 * time.Second

// New wires the application graph. assets is the embedded frontend tree
// rooted at the entry page.
func New(assets fs.FS) *App {
	if err := logger.Init(); err != nil {
		panic(fmt.Sprintf("logger init: %v", err))
	}

	a := &App{
		assets: assets,
		bus:    events.NewBus(),
		store:  store.Get(),
	}
	a.bridge = ipc.NewBridge(a.bus)
	a.manager = window.NewManager(a.store, a.windowFactory)
	a.controller = lifecycle.NewController(a.manager, a.quitHost)

	overrides := config.LoadDevOverrides()
	if overrides.LogLevel == "debug" || config.IsDev() {
		logger.EnableDebug()
	}

	// Configuration documents normally come from the embedded tree; a
	// developer can point the loader at a live content server instead,
	// through the controller's TLS trust policy.
	var fetcher paint.Fetcher = paint.FSFetcher{FS: assets}
	if overrides.ContentURL != "" {
		fetcher = paint.HTTPFetcher{
			BaseURL: overrides.ContentURL,
			Client:  a.controller.Certificates().Client(contentTimeout),
		}
		logger.Info("loading content from dev server", logger.Attrs{"url": overrides.ContentURL})
	}
	a.loader = paint.NewLoader(fetcher, 1.0)
	return a
}

// Controller exposes the lifecycle controller to main.
func (a *App) Controller() *lifecycle.Controller {
	return a.controller
}

// windowFactory binds the wails runtime window. Position is applied here;
// size is applied by the manager from the clamped bounds.
func (a *App) windowFactory(opts window.CreateOptions) (window.HostWindow, error) {
	if a.ctx == nil {
		return nil, fmt.Errorf("host runtime not ready")
	}
	win := window.NewWailsWindow(a.ctx)
	if opts.Bounds.X != nil && opts.Bounds.Y != nil {
		wailsruntime.WindowSetPosition(a.ctx, *opts.Bounds.X, *opts.Bounds.Y)
	}
	a.mainWindow, _ = win.(interface{ Dispatch(string) })
	return win, nil
}

func (a *App) quitHost() {
	if a.ctx != nil {
		wailsruntime.Quit(a.ctx)
	}
}

// Startup runs on host-ready. Order matters: handlers register before the
// window exists so nothing the renderer sends can race past them.
func (a *App) Startup(ctx context.Context) error {
	a.ctx = ctx

	a.host = ipc.NewHost(a.bus, a.manager, ipc.NewWailsDialogs(ctx), ipc.NewSystemClipboard())
	a.host.Register()
	a.registerInvokeHandlers()
	a.forwardToRenderer()

	if err := a.controller.OnReady(); err != nil {
		return err
	}

	// Mac dock re-open; the page relays its visibility gain.
	wailsruntime.EventsOn(ctx, "app:activated", func(...interface{}) {
		a.controller.HandleActivate()
	})
	return nil
}

// forwardToRenderer pushes every whitelisted host-to-renderer bus message
// into the page as a wails event.
func (a *App) forwardToRenderer() {
	a.bus.Subscribe(events.Wildcard, func(msg events.Message) {
		if !ipc.IsValidChannel(msg.Channel, ipc.Receive) {
			return
		}
		wailsruntime.EventsEmit(a.ctx, msg.Channel, msg.Args...)
	})
}

// registerInvokeHandlers answers the invokable file channels: project
// save and open round-trips.
func (a *App) registerInvokeHandlers() {
	a.bridge.Handle(ipc.ChannelSaveFile, func(args ...interface{}) (interface{}, error) {
		path, err := a.host.SaveProject(args...)
		if err != nil {
			return nil, err
		}
		if path != "" {
			a.bus.Publish(ipc.ChannelFileSaved, path)
		}
		return path, nil
	})
	a.bridge.Handle(ipc.ChannelOpenFile, func(args ...interface{}) (interface{}, error) {
		path, content, err := a.host.OpenProject()
		if err != nil {
			return nil, err
		}
		if path != "" {
			a.bus.Publish(ipc.ChannelFileOpened, path, content)
		}
		return content, nil
	})
}

// DomReady fires when the page is interactive.
func (a *App) DomReady(context.Context) {
	if a.mainWindow != nil {
		a.mainWindow.Dispatch(window.SignalDOMReady)
	}
	// Tell the renderer which theme the window was built with.
	a.bus.Publish(ipc.ChannelThemeChanged, config.DarkMode())
}

// BeforeClose fires before the window is destroyed. The controller
// decides: on mac the close is cancelled and the window hidden so the
// process stays resident for dock reactivation. Everywhere else the
// closed signal fires (cancelling any pending bounds write) and the
// shutdown proceeds.
func (a *App) BeforeClose(context.Context) bool {
	if a.controller.HandleCloseRequest() {
		return true
	}
	if a.mainWindow != nil {
		a.mainWindow.Dispatch(window.SignalClosed)
	}
	return false
}

// Shutdown flushes and releases everything.
func (a *App) Shutdown(context.Context) {
	_ = logger.Sync()
}

// ========== Renderer-facing bound methods ==========

// Send forwards a renderer message through the whitelisted bridge.
func (a *App) Send(channel string, args []interface{}) {
	a.bridge.Send(channel, args...)
}

// Invoke performs a whitelisted request/response round-trip.
func (a *App) Invoke(channel string, args []interface{}) (interface{}, error) {
	return a.bridge.Invoke(channel, args...)
}

// RuntimeInfo returns the read-only platform and version record.
func (a *App) RuntimeInfo() ipc.RuntimeInfo {
	return a.bridge.Info()
}

// LoadConfiguration bootstraps the renderer: both config documents,
// fetched concurrently, frozen, with session state initialized. Safe to
// call repeatedly; every caller observes the same load.
func (a *App) LoadConfiguration() (map[string]interface{}, error) {
	ctx := a.ctx
	if ctx == nil {
		ctx = context.Background()
	}
	result, err := a.loader.Load(ctx)
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{
		"config":  result.Config.Raw(),
		"utility": result.Utility,
	}, nil
}

// GetPageData parses and returns the toolbar document.
func (a *App) GetPageData() (*paint.PageData, error) {
	raw, err := fs.ReadFile(a.assets, paint.PageDataFile)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", paint.PageDataFile, err)
	}
	return paint.ParsePageData(raw)
}

// UpdateState shallow-merges a partial update into the session state.
// Errors until LoadConfiguration has resolved.
func (a *App) UpdateState(partial map[string]interface{}) error {
	return a.loader.UpdateState(partial)
}

// AddStickyNote creates a sticky note, subject to the capacity cap.
func (a *App) AddStickyNote(x, y float64, content, color string) (paint.StickyNote, error) {
	state, err := a.loader.State()
	if err != nil {
		return paint.StickyNote{}, err
	}
	return state.AddStickyNote(x, y, content, color)
}

// MoveStickyNote repositions a note mid-drag.
func (a *App) MoveStickyNote(id string, x, y float64) error {
	state, err := a.loader.State()
	if err != nil {
		return err
	}
	return state.MoveStickyNote(id, x, y)
}

// EditStickyNote rewrites a note's content and color.
func (a *App) EditStickyNote(id, content, color string) error {
	state, err := a.loader.State()
	if err != nil {
		return err
	}
	return state.EditStickyNote(id, content, color)
}

// RecordHistory commits a stroke snapshot onto the undo stack.
func (a *App) RecordHistory(imageData string) error {
	state, err := a.loader.State()
	if err != nil {
		return err
	}
	state.RecordHistory([]byte(imageData), time.Now())
	return nil
}

// Undo steps the session back one history entry.
func (a *App) Undo() (*paint.HistoryState, error) {
	state, err := a.loader.State()
	if err != nil {
		return nil, err
	}
	if entry, ok := state.Undo(); ok {
		return &entry, nil
	}
	return nil, nil
}

// Redo steps the session forward one history entry.
func (a *App) Redo() (*paint.HistoryState, error) {
	state, err := a.loader.State()
	if err != nil {
		return nil, err
	}
	if entry, ok := state.Redo(); ok {
		return &entry, nil
	}
	return nil, nil
}

// DeleteStickyNote removes a note.
func (a *App) DeleteStickyNote(id string) error {
	state, err := a.loader.State()
	if err != nil {
		return err
	}
	return state.DeleteStickyNote(id)
}
