package app

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the keybindings for the four toggle commands plus help and
// quit. The toggles mirror the host's chat-command surface.
type KeyMap struct {
	ToggleEnabled key.Binding
	ToggleOutside key.Binding
	ToggleTimer   key.Binding
	ToggleWarning key.Binding
	Help          key.Binding
	Quit          key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		ToggleEnabled: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "enable/disable reminder"),
		),
		ToggleOutside: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "show outside combat"),
		),
		ToggleTimer: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "show countdown"),
		),
		ToggleWarning: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "banner mode"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// bindings returns the keymap entries in help-display order.
func (k KeyMap) bindings() []key.Binding {
	return []key.Binding{
		k.ToggleEnabled,
		k.ToggleOutside,
		k.ToggleTimer,
		k.ToggleWarning,
		k.Help,
		k.Quit,
	}
}
