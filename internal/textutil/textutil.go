// Package textutil has small width-aware string helpers shared by the
// rendering code.
package textutil

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

// Width returns the visual width of s, ignoring ANSI escape sequences.
func Width(s string) int {
	return runewidth.StringWidth(ansi.Strip(s))
}

// Truncate shortens s to at most w cells, appending "…" when it cuts.
// Styled input should be truncated before styling; this operates on
// plain text.
func Truncate(s string, w int) string {
	if w <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= w {
		return s
	}
	return runewidth.Truncate(s, w, "…")
}

// PadRight pads s with spaces to exactly w cells, truncating if longer.
func PadRight(s string, w int) string {
	s = Truncate(s, w)
	if gap := w - Width(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}
