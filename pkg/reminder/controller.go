// Package reminder wires the condition engine to the host: it receives
// typed events, keeps the transient engine state, applies directives to the
// display adapter, and runs the drag-position tracker. Everything here is
// single-threaded; handlers run to completion before the next one starts.
package reminder

import (
	"log/slog"
	"time"

	"gitlab.com/tinyland/lab/helmwatch/pkg/display"
	"gitlab.com/tinyland/lab/helmwatch/pkg/engine"
	"gitlab.com/tinyland/lab/helmwatch/pkg/events"
	"gitlab.com/tinyland/lab/helmwatch/pkg/settings"
)

// Controller owns the engine state and dispatches host events to it.
type Controller struct {
	cfg     *settings.Settings
	adapter display.Adapter
	logger  *slog.Logger

	state engine.State

	// Last known buff status, maintained from buff events between ticks.
	buffActive    bool
	buffRemaining float64

	// cameraInUI mirrors the host's cursor/UI mode; the TUI sets it while
	// an overlay owns the pointer.
	cameraInUI bool

	deferred events.Deferred
	recheck  events.Token
}

// New constructs a controller. A nil adapter degrades to display.Null so a
// failed widget construction turns into silence rather than a crash. A nil
// logger discards debug output.
func New(cfg *settings.Settings, adapter display.Adapter, logger *slog.Logger) *Controller {
	if adapter == nil {
		adapter = display.Null{}
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Controller{cfg: cfg, adapter: adapter, logger: logger}
}

// State exposes the engine state for inspection in tests and debug views.
func (c *Controller) State() engine.State {
	return c.state
}

// SetCameraInUI records whether the cursor is currently in UI mode.
func (c *Controller) SetCameraInUI(v bool) {
	c.cameraInUI = v
}

// Handle dispatches a single host event. It is the only entry point that
// mutates state, so the no-reentrancy contract of the host carries over.
func (c *Controller) Handle(ev events.Event) {
	switch ev.Kind {
	case events.KindLoaded:
		c.debug("loaded", "enabled", c.cfg.Enabled)

	case events.KindCombat:
		c.handleCombat(ev)

	case events.KindEquipment:
		c.handleEquipment(ev)

	case events.KindBuff:
		c.handleBuff(ev)

	case events.KindTick:
		c.handleTick(ev)
	}
}

// ApplyCommand flips the addressed setting and returns the confirmation
// message. Disabling the reminder invalidates any pending re-check and
// hides everything immediately.
func (c *Controller) ApplyCommand(cmd settings.Command) string {
	msg := settings.Apply(cmd, c.cfg)
	if cmd == settings.CmdToggleEnabled && !c.cfg.Enabled {
		c.deferred.Invalidate()
		c.recheck = events.Token{}
		c.state.ClearCounters()
		c.hideAll()
	}
	c.debug("command applied", "message", msg)
	return msg
}

func (c *Controller) handleCombat(ev events.Event) {
	c.state.InCombat = ev.InCombat
	c.debug("combat changed", "in_combat", ev.InCombat)

	if engine.HideHolds(c.cfg, c.state.InCombat, c.cameraInUI) {
		c.hideAll()
		return
	}
	c.evaluate(ev.Time)
}

func (c *Controller) handleEquipment(ev events.Event) {
	if !ev.IsHeadSlot() {
		return
	}

	if ev.ItemID == 0 {
		c.state.HelmEquipped = false
		c.debug("head slot emptied")
		c.hideAll()
		return
	}

	c.state.HelmEquipped = ev.ItemID == c.cfg.Tracking.ItemID
	c.debug("head slot changed", "item", ev.ItemID, "tracked", c.state.HelmEquipped)
	c.evaluate(ev.Time)
}

func (c *Controller) handleBuff(ev events.Event) {
	if !ev.IsPlayerBuff(c.cfg.Tracking.BuffID) {
		return
	}

	if ev.Gained {
		c.buffActive = true
		c.buffRemaining = ev.Remaining
		c.debug("buff gained", "remaining", ev.Remaining)
		// The warning is moot the instant the buff lands.
		c.adapter.HideBanner()
		return
	}

	c.buffActive = false
	c.buffRemaining = 0
	c.recheck = c.deferred.Schedule(ev.Time.Add(events.BuffLossDeferral))
	c.debug("buff lost, re-check scheduled")
}

func (c *Controller) handleTick(ev events.Event) {
	evaluated := false
	if c.deferred.Due(c.recheck, ev.Time) {
		c.recheck = events.Token{}
		c.debug("deferred re-check firing")
		c.evaluate(ev.Time)
		evaluated = true
	}

	// At most one evaluation per tick; a second would advance the
	// countdown twice in one cycle.
	if !evaluated && c.cfg.Enabled && c.state.InCombat && c.state.HelmEquipped {
		c.evaluate(ev.Time)
	}

	// Drag detection runs every cycle, independent of visibility.
	c.trackDrag()
}

// evaluate runs the engine against current facts and applies the result.
func (c *Controller) evaluate(now time.Time) {
	facts := engine.Facts{
		Valid:         true,
		InCombat:      c.state.InCombat,
		HelmEquipped:  c.state.HelmEquipped,
		BuffActive:    c.buffActive,
		BuffRemaining: c.buffRemaining,
		CameraInUI:    c.cameraInUI,
		Now:           now,
	}

	res := engine.Evaluate(c.cfg, &c.state, facts)
	c.apply(res)
}

// apply maps a directive onto the adapter. Unfired banner directives leave
// the banner in whatever state it already is, which is exactly the
// re-trigger suppression the cooldown gate exists for.
func (c *Controller) apply(res engine.Result) {
	switch res.Directive.Mode {
	case engine.ModeHidden:
		c.hideAll()

	case engine.ModeIcon:
		c.adapter.ShowIcon(res.Directive.Text, res.Directive.Color)
		c.adapter.HideBanner()

	case engine.ModeBanner:
		c.adapter.HideIcon()
		if res.Fired {
			c.adapter.ShowBanner()
		}
	}
}

func (c *Controller) hideAll() {
	c.adapter.HideIcon()
	c.adapter.HideBanner()
}

// trackDrag overwrites the stored position when the live anchor's offsets
// differ. The stored record is never touched on ordinary ticks where the
// icon has not moved.
func (c *Controller) trackDrag() {
	live := c.adapter.Anchor()
	if live.X != c.cfg.Position.X || live.Y != c.cfg.Position.Y {
		c.debug("icon dragged", "x", live.X, "y", live.Y)
		c.cfg.Position = live
	}
}

// debug logs only when the user opted in; it never affects control flow.
func (c *Controller) debug(msg string, args ...any) {
	if c.cfg.DebugMode {
		c.logger.Debug(msg, args...)
	}
}
