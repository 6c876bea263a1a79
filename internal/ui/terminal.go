package ui

import (
	"os"

	"github.com/muesli/termenv"
)

// colorDisabled is flipped by --no-color.
var colorDisabled bool

// SetColorEnabled overrides color detection, used by the --no-color flag.
func SetColorEnabled(enabled bool) {
	colorDisabled = !enabled
}

// ShouldUseColor reports whether styled output is appropriate: not
// explicitly disabled, NO_COLOR unset, and a terminal that supports at
// least ANSI colors.
func ShouldUseColor() bool {
	if colorDisabled {
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return termenv.EnvColorProfile() != termenv.Ascii
}
