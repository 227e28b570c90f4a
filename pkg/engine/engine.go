// Package engine implements the condition-evaluation state machine behind
// the helm reminder. Evaluate is a pure function of the current settings,
// the transient engine state, and a snapshot of live game facts; it returns
// a display directive and updates the countdown fields in place. All widget
// mutation and persistence happen in the caller.
package engine

import (
	"strconv"
	"time"

	"gitlab.com/tinyland/lab/helmwatch/pkg/settings"
)

// Countdown arithmetic constants. The tracked buff lasts buffDuration
// seconds; once the remaining time drops to bashWindow the bash prompt
// takes over, and the last cooldownWindow seconds before that are animated
// as a red decaying countdown. The per-tick decrement assumes the host's
// 250ms tick, carried over from the original timing.
const (
	buffDuration   = 60.0
	bashWindow     = 50.0
	cooldownWindow = 10.0
	tickDecrement  = 0.2
)

// ReminderCooldown is the minimum interval between two "fired" results.
// Within the window the directive still applies to the widget, but callers
// that only react to edges (the banner) stay quiet.
const ReminderCooldown = 1000 * time.Millisecond

// Mode selects which visual the directive addresses. Exactly one mode is
// active per evaluation.
type Mode int

const (
	// ModeHidden hides both the icon and the banner.
	ModeHidden Mode = iota
	// ModeIcon shows the small reminder icon with Text/Color.
	ModeIcon
	// ModeBanner shows the full-screen warning banner.
	ModeBanner
)

// String returns the mode name for logs and test failures.
func (m Mode) String() string {
	switch m {
	case ModeHidden:
		return "hidden"
	case ModeIcon:
		return "icon"
	case ModeBanner:
		return "banner"
	}
	return "unknown"
}

// Color is the text color requested for the icon.
type Color int

const (
	// ColorNone means no text is shown.
	ColorNone Color = iota
	// ColorGreen marks the active-buff countdown.
	ColorGreen
	// ColorRed marks the post-expiry decaying countdown.
	ColorRed
	// ColorWhite marks the "Bash" prompt.
	ColorWhite
)

// String returns the color name for logs and test failures.
func (c Color) String() string {
	switch c {
	case ColorNone:
		return "none"
	case ColorGreen:
		return "green"
	case ColorRed:
		return "red"
	case ColorWhite:
		return "white"
	}
	return "unknown"
}

// Directive tells the display adapter what to show.
type Directive struct {
	Mode  Mode
	Text  string
	Color Color
}

// Result pairs the directive with the edge-trigger flag. Fired is true when
// the reminder cooldown had elapsed at evaluation time; banner directives
// are only surfaced to the user on a fired result.
type Result struct {
	Directive Directive
	Fired     bool
}

// Facts is the snapshot of live game state an evaluation runs against.
// Valid=false means the host could not supply facts (widgets not yet
// constructed); Evaluate then returns Hidden without touching state.
type Facts struct {
	Valid         bool
	InCombat      bool
	HelmEquipped  bool
	BuffActive    bool
	BuffRemaining float64
	CameraInUI    bool
	Now           time.Time
}

// State is the transient engine state. It is constructed once at startup,
// passed by pointer to every evaluation, and never persisted.
type State struct {
	InCombat     bool
	HelmEquipped bool

	// LastReminder is the time the reminder last fired; it gates the
	// ReminderCooldown window.
	LastReminder time.Time

	// BuffRemaining counts down while the buff is active, 0 when absent.
	BuffRemaining float64

	// CooldownDisplay is the decaying counter shown after the buff
	// expires, before the bash prompt takes over.
	CooldownDisplay float64
}

// ClearCounters zeroes both countdown fields.
func (s *State) ClearCounters() {
	s.BuffRemaining = 0
	s.CooldownDisplay = 0
}

// HideHolds reports whether the unconditional hide rule applies: position
// locked while the cursor is in UI mode, or out of combat without the
// show-outside-combat option.
func HideHolds(cfg *settings.Settings, inCombat, cameraInUI bool) bool {
	if cfg.LockPosition && cameraInUI {
		return true
	}
	return !inCombat && !cfg.ShowOutsideCombat
}

// Evaluate runs the rule chain and returns the directive for this cycle.
// Rules short-circuit: once a directive is chosen, later rules are not
// considered. The reminder-cooldown gate only runs for directives chosen in
// banner or icon mode; the early hide rules leave LastReminder untouched.
func Evaluate(cfg *settings.Settings, st *State, f Facts) Result {
	if !f.Valid {
		return Result{Directive: Directive{Mode: ModeHidden}}
	}

	// Rule 1: master switch.
	if !cfg.Enabled {
		st.ClearCounters()
		return Result{Directive: Directive{Mode: ModeHidden}}
	}

	// Rule 2: nothing to remind about without the helm.
	if !f.HelmEquipped {
		st.ClearCounters()
		return Result{Directive: Directive{Mode: ModeHidden}}
	}

	// Rule 3: locked-in-UI or out-of-combat hide.
	if HideHolds(cfg, f.InCombat, f.CameraInUI) {
		st.ClearCounters()
		return Result{Directive: Directive{Mode: ModeHidden}}
	}

	var d Directive
	if cfg.ToggleWarning {
		d = evaluateBanner(f)
	} else {
		d = evaluateIcon(cfg, st, f)
	}

	return Result{Directive: d, Fired: gate(st, f.Now)}
}

// evaluateBanner handles banner mode: the icon stays hidden, and the banner
// shows only while the buff is missing.
func evaluateBanner(f Facts) Directive {
	if f.BuffActive {
		return Directive{Mode: ModeHidden}
	}
	return Directive{Mode: ModeBanner}
}

// evaluateIcon handles icon mode: green countdown while the buff runs, a
// red decaying countdown through the last seconds after expiry, then the
// white bash prompt while combat continues.
func evaluateIcon(cfg *settings.Settings, st *State, f Facts) Directive {
	switch {
	case f.BuffActive:
		st.BuffRemaining = f.BuffRemaining
		if cfg.ToggleTimer {
			return Directive{
				Mode:  ModeIcon,
				Text:  strconv.Itoa(int(f.BuffRemaining)),
				Color: ColorGreen,
			}
		}
		st.ClearCounters()
		return Directive{Mode: ModeIcon}

	case (f.InCombat || cfg.ShowOutsideCombat) && st.BuffRemaining <= bashWindow:
		st.ClearCounters()
		return Directive{Mode: ModeIcon, Text: "Bash", Color: ColorWhite}

	case st.BuffRemaining > bashWindow && st.CooldownDisplay <= cooldownWindow:
		st.CooldownDisplay = cooldownWindow - (buffDuration - st.BuffRemaining)
		st.BuffRemaining -= tickDecrement
		return Directive{
			Mode:  ModeIcon,
			Text:  strconv.FormatFloat(st.CooldownDisplay-tickDecrement, 'f', 1, 64),
			Color: ColorRed,
		}

	default:
		st.ClearCounters()
		return Directive{Mode: ModeHidden}
	}
}

// gate applies the reminder cooldown. A fired result advances LastReminder;
// within the window the state is left alone so repeated evaluations with
// unchanged facts stay idempotent.
func gate(st *State, now time.Time) bool {
	if now.Sub(st.LastReminder) < ReminderCooldown {
		return false
	}
	st.LastReminder = now
	return true
}
