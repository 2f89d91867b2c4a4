package cmd

import (
	"flag"
	"fmt"
	"io"
	"text/tabwriter"

	logging "github.com/ipfs/go-log/v2"

	"github.com/ayugram/ayu-settings/settings"
)

var log = logging.Logger("ayu/cli")

// GhostModeKey is the read-only pseudo key for the derived ghost mode flag.
const GhostModeKey = "ghostMode"

// Show prints every setting, or the raw file contents with -json.
func Show(store *settings.Store, args []string, w io.Writer) error {
	fs := flag.NewFlagSet("show", flag.ContinueOnError)
	fs.SetOutput(w)
	asJSON := fs.Bool("json", false, "Print settings as JSON")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := store.Load(); err != nil {
		return err
	}
	current := store.Instance()

	if *asJSON {
		data, err := settings.Encode(current)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, string(data))
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, key := range settings.Keys() {
		value, _ := settings.Lookup(current, key)
		fmt.Fprintf(tw, "%s\t%v\n", key, value)
	}
	fmt.Fprintf(tw, "%s\t%v\n", GhostModeKey, store.GhostModeEnabled())
	return tw.Flush()
}

// Get prints the values of the given keys, one per line.
func Get(store *settings.Store, args []string, w io.Writer) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: get <key>...")
	}
	if err := store.Load(); err != nil {
		return err
	}
	current := store.Instance()

	for _, key := range args {
		if key == GhostModeKey {
			fmt.Fprintln(w, store.GhostModeEnabled())
			continue
		}
		value, ok := settings.Lookup(current, key)
		if !ok {
			return fmt.Errorf("%w: %s", settings.ErrUnknownKey, key)
		}
		fmt.Fprintln(w, value)
	}
	return nil
}
