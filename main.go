package main

import (
	"embed"

	logging "github.com/ipfs/go-log/v2"
	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"

	"github.com/ayugram/ayu-settings/config"
	"github.com/ayugram/ayu-settings/version"
)

//go:embed all:frontend/dist
var assets embed.FS

func main() {
	cfg := config.Load()
	if lvl, err := logging.LevelFromString(cfg.LogLevel); err == nil {
		logging.SetAllLoggers(lvl)
	}

	app := NewApp(cfg)

	err := wails.Run(&options.App{
		Title:  "AyuGram Settings " + version.Version,
		Width:  520,
		Height: 720,
		AssetServer: &assetserver.Options{
			Assets: assets,
		},
		OnStartup:  app.startup,
		OnShutdown: app.shutdown,
		Bind: []interface{}{
			app,
		},
	})
	if err != nil {
		log.Fatalw("wails exited with error", "error", err)
	}
}
