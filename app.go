package main

import (
	"context"
	"sync"

	logging "github.com/ipfs/go-log/v2"
	"github.com/wailsapp/wails/v2/pkg/runtime"

	"github.com/ayugram/ayu-settings/config"
	"github.com/ayugram/ayu-settings/reactive"
	"github.com/ayugram/ayu-settings/settings"
	"github.com/ayugram/ayu-settings/version"
)

var log = logging.Logger("ayu/app")

// Events pushed to the frontend.
const (
	EventGhostMode   = "ghost_mode_changed"
	EventDeletedMark = "deleted_mark_changed"
	EventEditedMark  = "edited_mark_changed"
	EventShowPeerID  = "show_peer_id_changed"
	EventReloaded    = "settings_reloaded"
)

type emitFunc func(ctx context.Context, eventName string, optionalData ...interface{})

// App is bound to the frontend. Wails calls bound methods from its own
// goroutines, so every store access goes through storeMu.
type App struct {
	ctx     context.Context
	cancel  context.CancelFunc
	cfg     config.Config
	store   *settings.Store
	storeMu sync.Mutex
	watcher *settings.Watcher
	events  reactive.Lifetime
	emit    emitFunc
}

// NewApp creates a new App application struct
func NewApp(cfg config.Config) *App {
	a := &App{
		cfg:   cfg,
		store: settings.New(cfg.SettingsPath()),
		emit:  runtime.EventsEmit,
	}
	a.loadSettings()
	return a
}

func (a *App) loadSettings() {
	if err := a.store.Load(); err != nil {
		log.Warnw("failed to load settings, using defaults", "path", a.store.Path(), "error", err)
	}
}

func (a *App) startup(ctx context.Context) {
	a.ctx, a.cancel = context.WithCancel(ctx)

	a.storeMu.Lock()
	a.bindEvents()
	a.storeMu.Unlock()

	w, err := settings.NewWatcher(a.store.Path(), a.cfg.WatchDebounce)
	if err != nil {
		log.Warnw("settings watcher unavailable", "error", err)
		return
	}
	a.watcher = w
	w.Start(a.ctx)
	go a.followFile(a.ctx, w)

	log.Infow("started", "version", version.Version, "settings", a.store.Path())
}

func (a *App) shutdown(ctx context.Context) {
	if a.cancel != nil {
		a.cancel()
	}
	if a.watcher != nil {
		a.watcher.Close()
	}

	a.storeMu.Lock()
	defer a.storeMu.Unlock()
	a.events.Destroy()
	a.store.Close()
}

// bindEvents forwards slot changes to the frontend. Callers hold storeMu.
func (a *App) bindEvents() {
	a.store.GhostModeEnabledReactive().Changes(&a.events, func(v bool) {
		a.emit(a.ctx, EventGhostMode, v)
	})
	a.store.DeletedMarkReactive().Changes(&a.events, func(v string) {
		a.emit(a.ctx, EventDeletedMark, v)
	})
	a.store.EditedMarkReactive().Changes(&a.events, func(v string) {
		a.emit(a.ctx, EventEditedMark, v)
	})
	a.store.ShowPeerIDReactive().Changes(&a.events, func(v int) {
		a.emit(a.ctx, EventShowPeerID, v)
	})
}

func (a *App) followFile(ctx context.Context, w *settings.Watcher) {
	for {
		select {
		case <-ctx.Done():
			return
		case d, ok := <-w.Changes():
			if !ok {
				return
			}
			a.reload(d)
		case err := <-w.Errors():
			log.Debugw("settings watcher error", "error", err)
		}
	}
}

func (a *App) reload(d settings.Digest) {
	a.storeMu.Lock()
	defer a.storeMu.Unlock()

	reloaded, err := a.store.ReloadIfChanged(d)
	if err != nil {
		log.Warnw("failed to reload settings", "error", err)
		return
	}
	if reloaded {
		log.Infow("settings changed on disk", "digest", d)
		a.emit(a.ctx, EventReloaded, a.store.Instance())
	}
}

// GetSettings returns the current settings.
func (a *App) GetSettings() settings.Settings {
	a.storeMu.Lock()
	defer a.storeMu.Unlock()
	return a.store.Instance()
}

// SaveSettings replaces every setting and writes the file.
func (a *App) SaveSettings(s settings.Settings) error {
	a.storeMu.Lock()
	defer a.storeMu.Unlock()
	a.store.Replace(s)
	return a.store.Save()
}

// SetValue changes a single setting by its JSON key and writes the file.
func (a *App) SetValue(key, value string) error {
	a.storeMu.Lock()
	defer a.storeMu.Unlock()
	if err := a.store.Apply(key, value); err != nil {
		return err
	}
	return a.store.Save()
}

// GhostModeEnabled reports the derived ghost mode flag.
func (a *App) GhostModeEnabled() bool {
	a.storeMu.Lock()
	defer a.storeMu.Unlock()
	return a.store.GhostModeEnabled()
}

// SetGhostMode is the drawer toggle: it flips the four ghost inputs and saves.
func (a *App) SetGhostMode(enabled bool) error {
	a.storeMu.Lock()
	defer a.storeMu.Unlock()
	a.store.SetGhostMode(enabled)
	return a.store.Save()
}

// GetVersion returns the current application version
func (a *App) GetVersion() string {
	return version.Version
}
