package cmd

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/schollz/progressbar/v3"

	"github.com/ayugram/ayu-settings/settings"
)

// Watch follows the settings file and reports edits made by other programs
// until ctx is cancelled.
func Watch(ctx context.Context, store *settings.Store, debounce time.Duration, w io.Writer) error {
	if err := store.Load(); err != nil {
		return err
	}

	watcher, err := settings.NewWatcher(store.Path(), debounce)
	if err != nil {
		return err
	}
	defer watcher.Close()
	watcher.Start(ctx)

	ghost := store.GhostModeEnabledReactive().Observe()
	marks := store.EditedMarkReactive().Observe()

	bar := progressbar.NewOptions(-1,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription(describe(store)),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionShowCount(),
	)

	fmt.Fprintf(w, "Watching %s (ghost mode %s)\n", store.Path(), onOff(store.GhostModeEnabled()))

	for {
		select {
		case <-ctx.Done():
			bar.Finish()
			fmt.Fprintln(w)
			return nil

		case d := <-watcher.Changes():
			reloaded, err := store.ReloadIfChanged(d)
			if err != nil {
				log.Warnw("reload failed", "path", store.Path(), "error", err)
				continue
			}
			if reloaded {
				bar.Add(1)
				bar.Describe(describe(store))
			}

		case <-ghost.Changes():
			on := ghost.Next()
			bar.Clear()
			fmt.Fprintf(w, "Ghost mode turned %s\n", onOff(on))

		case <-marks.Changes():
			mark := marks.Next()
			bar.Clear()
			fmt.Fprintf(w, "Edited mark is now %q\n", mark)

		case err := <-watcher.Errors():
			log.Warnw("watch error", "error", err)
		}
	}
}

func describe(store *settings.Store) string {
	return fmt.Sprintf("reloads (ghost %s)", onOff(store.GhostModeEnabled()))
}
