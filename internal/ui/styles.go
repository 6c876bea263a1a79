// Package ui provides terminal styling and the interactive prompting
// collaborator for bugrep.
package ui

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
)

// Semantic colors, adaptive to light/dark terminals.
var (
	ColorWarn = lipgloss.AdaptiveColor{
		Light: "#f2ae49",
		Dark:  "#ffb454",
	}
	ColorFail = lipgloss.AdaptiveColor{
		Light: "#f07171",
		Dark:  "#f07178",
	}
	ColorMuted = lipgloss.AdaptiveColor{
		Light: "#828c99",
		Dark:  "#6c7680",
	}
	ColorAccent = lipgloss.AdaptiveColor{
		Light: "#399ee6",
		Dark:  "#59c2ff",
	}
)

var (
	WarnStyle   = lipgloss.NewStyle().Foreground(ColorWarn)
	FailStyle   = lipgloss.NewStyle().Foreground(ColorFail)
	MutedStyle  = lipgloss.NewStyle().Foreground(ColorMuted)
	HeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorAccent)
)

const (
	IconWarn = "⚠"
	IconFail = "✗"
)

// RenderWarn styles text as a warning, when color is enabled.
func RenderWarn(s string) string {
	if !ShouldUseColor() {
		return s
	}
	return WarnStyle.Render(s)
}

// RenderFail styles text as a failure, when color is enabled.
func RenderFail(s string) string {
	if !ShouldUseColor() {
		return s
	}
	return FailStyle.Render(s)
}

// RenderMuted styles text as secondary, when color is enabled.
func RenderMuted(s string) string {
	if !ShouldUseColor() {
		return s
	}
	return MutedStyle.Render(s)
}

// RenderHeader styles a table or section header, when color is enabled.
func RenderHeader(s string) string {
	if !ShouldUseColor() {
		return s
	}
	return HeaderStyle.Render(s)
}

// Warnf prints an advisory warning to stderr.
func Warnf(format string, args ...interface{}) {
	fmt.Fprintln(os.Stderr, RenderWarn(IconWarn+" "+fmt.Sprintf(format, args...)))
}
