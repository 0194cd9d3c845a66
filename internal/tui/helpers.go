package tui

import (
	"github.com/charmbracelet/x/ansi"
)

// truncate cuts s to width terminal cells, ending with "…" when anything
// was dropped. Styled strings keep their escape sequences intact.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if ansi.StringWidth(s) <= width {
		return s
	}
	return ansi.Truncate(s, width, "…")
}

// clamp restricts val to [lo, hi].
func clamp(val, lo, hi int) int {
	return min(max(val, lo), hi)
}
