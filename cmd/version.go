package cmd

import (
	"fmt"
	"io"

	"github.com/ayugram/ayu-settings/version"
)

func Version(w io.Writer) {
	fmt.Fprintf(w, "ayu %s\n", version.Version)
}
