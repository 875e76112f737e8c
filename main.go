package main

import (
	"context"
	"embed"
	"io/fs"
	"log"
	"os"

	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"

	"github.com/paintapp/paintapp/internal/app"
	"github.com/paintapp/paintapp/internal/infrastructure/config"
	"github.com/paintapp/paintapp/internal/store"
)

//go:embed all:frontend/dist
var assets embed.FS

func main() {
	pages, err := fs.Sub(assets, "frontend/dist")
	if err != nil {
		log.Fatalf("asset tree: %v", err)
	}

	paintApp := app.New(pages)

	// Installer shim gate and command-line switches run before the host
	// runtime starts; a shim-handled startup exits without a window.
	if paintApp.Controller().PreInit() {
		os.Exit(0)
	}

	// Bounds are read (and clamped) before the window is constructed.
	bounds := store.Get().GetSavedWindowBounds()
	darkMode := config.DarkMode()

	err = wails.Run(&options.App{
		Title:     config.AppName,
		Width:     bounds.Width,
		Height:    bounds.Height,
		MinWidth:  config.Window.Min.Width,
		MinHeight: config.Window.Min.Height,

		BackgroundColour: config.BackgroundColor(darkMode),

		AssetServer: &assetserver.Options{
			Assets: pages,
		},

		Mac:     config.MacOptions(darkMode),
		Windows: config.WindowsOptions(darkMode),
		Linux:   config.LinuxOptions(),

		Bind: []interface{}{
			paintApp,
		},

		OnStartup: func(ctx context.Context) {
			if err := paintApp.Startup(ctx); err != nil {
				log.Fatalf("startup failed: %v", err)
			}
		},
		OnDomReady:    paintApp.DomReady,
		OnBeforeClose: paintApp.BeforeClose,
		OnShutdown:    paintApp.Shutdown,
	})
	if err != nil {
		log.Fatalf("host runtime error: %v", err)
	}
}
