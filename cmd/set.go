package cmd

import (
	"fmt"
	"io"

	"github.com/ayugram/ayu-settings/settings"
)

// Set applies key/value pairs and saves once all of them parsed.
func Set(store *settings.Store, args []string, w io.Writer) error {
	if len(args) == 0 || len(args)%2 != 0 {
		return fmt.Errorf("usage: set <key> <value> [<key> <value>...]")
	}
	if err := loadForUpdate(store); err != nil {
		return err
	}

	// Apply to a scratch store first so a bad pair leaves the file untouched.
	scratch := settings.New(store.Path())
	scratch.Replace(store.Instance())
	for i := 0; i < len(args); i += 2 {
		if err := scratch.Apply(args[i], args[i+1]); err != nil {
			return err
		}
	}
	scratch.Close()

	store.Replace(scratch.Instance())
	if err := store.Save(); err != nil {
		return err
	}
	log.Infow("settings updated", "path", store.Path(), "pairs", len(args)/2)
	fmt.Fprintf(w, "Saved %s (ghost mode %s)\n", store.Path(), onOff(store.GhostModeEnabled()))
	return nil
}

// Ghost turns ghost mode on or off, or prints its state.
func Ghost(store *settings.Store, args []string, w io.Writer) error {
	if err := loadForUpdate(store); err != nil {
		return err
	}

	action := "status"
	if len(args) > 0 {
		action = args[0]
	}

	switch action {
	case "status":
		fmt.Fprintf(w, "Ghost mode: %s\n", onOff(store.GhostModeEnabled()))
		return nil
	case "on":
		store.SetGhostMode(true)
	case "off":
		store.SetGhostMode(false)
	default:
		return fmt.Errorf("usage: ghost [on|off|status]")
	}

	if err := store.Save(); err != nil {
		return err
	}
	fmt.Fprintf(w, "Ghost mode: %s\n", onOff(store.GhostModeEnabled()))
	return nil
}

// loadForUpdate loads the store, but fails on a file that does not decode
// instead of letting the next save replace it with defaults.
func loadForUpdate(store *settings.Store) error {
	if err := Check(store.Path(), io.Discard); err != nil {
		return fmt.Errorf("refusing to overwrite %s: %w", store.Path(), err)
	}
	return store.Load()
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}
