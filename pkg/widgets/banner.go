package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"gitlab.com/tinyland/lab/helmwatch/pkg/components"
	"gitlab.com/tinyland/lab/helmwatch/pkg/theme"
)

// BannerText is the center-screen warning shown while the buff is missing.
const BannerText = "HELM BUFF MISSING - BASH!"

// BannerWidget renders the full-screen warning banner.
type BannerWidget struct{}

// NewBannerWidget creates a banner widget.
func NewBannerWidget() *BannerWidget {
	return &BannerWidget{}
}

// ID returns the unique identifier for this widget.
func (w *BannerWidget) ID() string {
	return "banner"
}

// Title returns the display name for this widget.
func (w *BannerWidget) Title() string {
	return "Warning"
}

// MinSize returns the minimum width and height this widget requires.
func (w *BannerWidget) MinSize() (int, int) {
	return components.VisibleLen(BannerText), 1
}

// View renders the warning text centered in the given area. The text sits
// slightly above the vertical midpoint, where the eye rests in combat.
func (w *BannerWidget) View(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}

	style := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.Current.BannerText))

	text := components.Truncate(BannerText, width)
	midY := height / 3

	lines := make([]string, height)
	for i := range lines {
		if i == midY {
			lines[i] = components.PadCenter(style.Render(text), width)
		}
	}
	return strings.Join(lines, "\n")
}
