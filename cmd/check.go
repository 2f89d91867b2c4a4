package cmd

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/ayugram/ayu-settings/settings"
)

// Check reports whether the settings file at path decodes. Unlike
// Store.Load it returns decode errors so scripts can detect a broken file.
func Check(path string, w io.Writer) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			fmt.Fprintf(w, "%s: not found, defaults in use\n", path)
			return nil
		}
		return fmt.Errorf("failed to read settings: %w", err)
	}

	s, err := settings.Decode(data)
	if err != nil {
		var decodeErr *settings.DecodeError
		if errors.As(err, &decodeErr) {
			decodeErr.Path = path
		}
		return err
	}

	fmt.Fprintf(w, "%s: ok (digest %s, ghost mode %s)\n", path, settings.Sum(data), onOff(settings.GhostMode(s)))
	return nil
}
