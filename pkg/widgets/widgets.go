// Package widgets renders the two visuals of the reminder: the small
// persistent icon with its countdown text, and the full-screen warning
// banner. Widgets are passive; the app copies the display adapter's state
// into them every frame and places the output itself.
package widgets

import (
	"gitlab.com/tinyland/lab/helmwatch/pkg/engine"
	"gitlab.com/tinyland/lab/helmwatch/pkg/theme"
)

// textColor maps a directive color onto the active theme's palette.
// ColorNone renders in the plain foreground.
func textColor(c engine.Color) string {
	switch c {
	case engine.ColorGreen:
		return theme.Current.BuffCountdown
	case engine.ColorRed:
		return theme.Current.ExpiryDecay
	case engine.ColorWhite:
		return theme.Current.BashPrompt
	}
	return theme.Current.Foreground
}
