package settings

// Command identifies one of the user-facing toggle commands. Each command
// flips a single boolean and produces a human-readable confirmation.
type Command int

const (
	// CmdToggleEnabled turns the whole reminder on or off.
	CmdToggleEnabled Command = iota
	// CmdToggleOutsideCombat toggles icon visibility outside combat.
	CmdToggleOutsideCombat
	// CmdToggleTimer toggles the numeric countdown on the icon.
	CmdToggleTimer
	// CmdToggleWarning switches between icon mode and banner mode.
	CmdToggleWarning
)

// Apply flips the boolean addressed by cmd and returns the confirmation
// message shown to the user. Unknown commands are a no-op with an empty
// message.
func Apply(cmd Command, s *Settings) string {
	switch cmd {
	case CmdToggleEnabled:
		s.Enabled = !s.Enabled
		if s.Enabled {
			return "Helm reminder enabled."
		}
		return "Helm reminder disabled."
	case CmdToggleOutsideCombat:
		s.ShowOutsideCombat = !s.ShowOutsideCombat
		if s.ShowOutsideCombat {
			return "Icon shown outside combat."
		}
		return "Icon hidden outside combat."
	case CmdToggleTimer:
		s.ToggleTimer = !s.ToggleTimer
		if s.ToggleTimer {
			return "Buff countdown shown on icon."
		}
		return "Buff countdown hidden."
	case CmdToggleWarning:
		s.ToggleWarning = !s.ToggleWarning
		if s.ToggleWarning {
			return "Banner warning mode on."
		}
		return "Icon mode on."
	}
	return ""
}
