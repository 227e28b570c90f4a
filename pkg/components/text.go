// Package components provides ANSI-aware text measurement and padding
// helpers shared by the icon and banner widgets. Widths are measured in
// terminal cells, so styled text and wide characters line up correctly.
package components

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// VisibleLen returns the visible width of s in terminal cells, ignoring
// ANSI escape sequences and counting wide characters as 2.
func VisibleLen(s string) int {
	return ansi.StringWidth(s)
}

// Truncate cuts s to at most maxWidth visible cells, preserving escape
// sequences before the cut point. Strings already within maxWidth are
// returned unchanged.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	return ansi.Truncate(s, maxWidth, "")
}

// PadCenter centers s within width by padding spaces on both sides. Odd
// padding puts the extra space on the right. Strings wider than width are
// returned unchanged.
func PadCenter(s string, width int) string {
	vis := VisibleLen(s)
	if vis >= width {
		return s
	}
	total := width - vis
	left := total / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", total-left)
}

// PadRight pads s with trailing spaces to exactly width visible cells.
// Strings already wider than width are returned unchanged.
func PadRight(s string, width int) string {
	vis := VisibleLen(s)
	if vis >= width {
		return s
	}
	return s + strings.Repeat(" ", width-vis)
}
