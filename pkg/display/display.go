// Package display defines the narrow interface between the condition
// engine and the concrete widgets. The core only ever calls these six
// operations; widget construction, styling, and placement live elsewhere.
package display

import (
	"gitlab.com/tinyland/lab/helmwatch/pkg/engine"
	"gitlab.com/tinyland/lab/helmwatch/pkg/settings"
)

// Adapter is the display surface the reminder controller drives.
type Adapter interface {
	// ShowIcon makes the icon visible with the given text and color.
	ShowIcon(text string, color engine.Color)
	// HideIcon hides the icon.
	HideIcon()
	// ShowBanner makes the full-screen warning banner visible.
	ShowBanner()
	// HideBanner hides the banner.
	HideBanner()
	// Anchor returns the icon's live anchor, which drifts from the stored
	// position while the user drags the icon.
	Anchor() settings.Position
	// SetAnchor moves the icon to the given anchor.
	SetAnchor(settings.Position)
}

// Null is the adapter used when widget construction failed at startup.
// Every call is a no-op, so later evaluations degrade to silence instead
// of crashing.
type Null struct{}

func (Null) ShowIcon(string, engine.Color) {}
func (Null) HideIcon()                     {}
func (Null) ShowBanner()                   {}
func (Null) HideBanner()                   {}
func (Null) Anchor() settings.Position     { return settings.Position{} }
func (Null) SetAnchor(settings.Position)   {}

// Memory holds the current widget state in plain fields. The TUI reads it
// every frame to render, and tests inspect it directly.
type Memory struct {
	IconVisible   bool
	IconText      string
	IconColor     engine.Color
	BannerVisible bool

	anchor settings.Position
}

// NewMemory returns a Memory adapter anchored at the given position.
func NewMemory(anchor settings.Position) *Memory {
	return &Memory{anchor: anchor}
}

// ShowIcon records the icon as visible with the given text and color.
func (m *Memory) ShowIcon(text string, color engine.Color) {
	m.IconVisible = true
	m.IconText = text
	m.IconColor = color
}

// HideIcon records the icon as hidden and clears its text.
func (m *Memory) HideIcon() {
	m.IconVisible = false
	m.IconText = ""
	m.IconColor = engine.ColorNone
}

// ShowBanner records the banner as visible.
func (m *Memory) ShowBanner() {
	m.BannerVisible = true
}

// HideBanner records the banner as hidden.
func (m *Memory) HideBanner() {
	m.BannerVisible = false
}

// Anchor returns the live icon anchor.
func (m *Memory) Anchor() settings.Position {
	return m.anchor
}

// SetAnchor moves the live icon anchor.
func (m *Memory) SetAnchor(p settings.Position) {
	m.anchor = p
}

// compile-time checks that both adapters satisfy the interface.
var (
	_ Adapter = Null{}
	_ Adapter = (*Memory)(nil)
)
