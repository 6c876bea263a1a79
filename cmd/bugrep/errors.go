package main

import (
	"fmt"
	"os"

	"github.com/pvoronin/bugrep/internal/ui"
)

// FatalError writes an error message to stderr and exits non-zero. Use for
// configuration and store-corruption failures that must abort the run.
func FatalError(format string, args ...interface{}) {
	fmt.Fprintln(os.Stderr, ui.RenderFail(ui.IconFail+" Error: "+fmt.Sprintf(format, args...)))
	os.Exit(1)
}

// WarnError writes a warning to stderr and returns. Use for recoverable
// conditions that should be visible but never abort the run.
func WarnError(format string, args ...interface{}) {
	fmt.Fprintln(os.Stderr, ui.RenderWarn(ui.IconWarn+" Warning: "+fmt.Sprintf(format, args...)))
}
