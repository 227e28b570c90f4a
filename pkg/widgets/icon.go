package widgets

import (
	"github.com/charmbracelet/lipgloss"

	"gitlab.com/tinyland/lab/helmwatch/pkg/components"
	"gitlab.com/tinyland/lab/helmwatch/pkg/engine"
	"gitlab.com/tinyland/lab/helmwatch/pkg/theme"
)

// iconInnerWidth is the text area inside the icon border, wide enough for
// "Bash" and any countdown value the engine produces.
const iconInnerWidth = 6

// IconWidget renders the small reminder icon. The text and color follow
// the last directive applied to the display adapter.
type IconWidget struct {
	text  string
	color engine.Color
}

// NewIconWidget creates an icon widget with no text.
func NewIconWidget() *IconWidget {
	return &IconWidget{}
}

// ID returns the unique identifier for this widget.
func (w *IconWidget) ID() string {
	return "icon"
}

// Title returns the display name for this widget.
func (w *IconWidget) Title() string {
	return "Helm"
}

// MinSize returns the minimum width and height this widget requires,
// border included.
func (w *IconWidget) MinSize() (int, int) {
	return iconInnerWidth + 2, 3
}

// Set updates the icon's text and color from the current directive.
func (w *IconWidget) Set(text string, color engine.Color) {
	w.text = text
	w.color = color
}

// View renders the icon as a bordered box. The border switches to the
// alert color once the buff has lapsed (red decay or bash prompt).
func (w *IconWidget) View() string {
	border := theme.Current.Border
	if w.color == engine.ColorRed || w.color == engine.ColorWhite {
		border = theme.Current.BorderAlert
	}

	text := components.Truncate(w.text, iconInnerWidth)
	line := components.PadCenter(text, iconInnerWidth)

	textStyle := lipgloss.NewStyle().
		Bold(w.color == engine.ColorWhite).
		Foreground(lipgloss.Color(textColor(w.color)))

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(border))

	return boxStyle.Render(textStyle.Render(line))
}
