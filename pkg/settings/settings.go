// Package settings provides the persisted configuration for helmwatch.
// The schema mirrors what the game host stores per addon: a handful of
// feature toggles, the saved icon position, and the ids of the tracked
// helm and its buff. Values are persisted as TOML and merged over
// defaults on load.
package settings

// SchemaVersion tags the on-disk layout. Version 1 performs no migration;
// the field exists so a future layout change can detect old files.
const SchemaVersion = 1

// Settings is the full persisted option set.
type Settings struct {
	Version int `toml:"version"`

	// Enabled gates the whole reminder. When false every evaluation
	// resolves to hidden.
	Enabled bool `toml:"enabled"`

	// DebugMode enables observational debug logging. It never affects
	// evaluation results.
	DebugMode bool `toml:"debug_mode"`

	// ShowOutsideCombat keeps the icon visible while out of combat.
	ShowOutsideCombat bool `toml:"show_outside_combat"`

	// ToggleTimer shows the numeric buff countdown on the icon.
	ToggleTimer bool `toml:"toggle_timer"`

	// ToggleWarning switches from the small icon to the full-screen
	// banner warning.
	ToggleWarning bool `toml:"toggle_warning"`

	// LockPosition prevents the icon from being dragged and hides it
	// while the cursor is in UI mode.
	LockPosition bool `toml:"lock_position"`

	Position Position `toml:"position"`
	Tracking Tracking `toml:"tracking"`
}

// Position is the saved icon anchor. Point/Relative/RelativePoint carry the
// host's anchor naming; X and Y are the offsets the drag tracker compares.
type Position struct {
	Point         string  `toml:"point"`
	Relative      string  `toml:"relative"`
	RelativePoint string  `toml:"relative_point"`
	X             float64 `toml:"x"`
	Y             float64 `toml:"y"`
}

// Tracking names the monitored head-slot item and its associated buff.
type Tracking struct {
	ItemID int `toml:"item_id"`
	BuffID int `toml:"buff_id"`
}

// Default ids for the shipped helm/buff pairing.
const (
	DefaultItemID = 22736
	DefaultBuffID = 28131
)

// Default returns the settings used when no file exists yet.
func Default() *Settings {
	return &Settings{
		Version:           SchemaVersion,
		Enabled:           true,
		DebugMode:         false,
		ShowOutsideCombat: false,
		ToggleTimer:       true,
		ToggleWarning:     false,
		LockPosition:      false,
		Position: Position{
			Point:         "CENTER",
			Relative:      "screen",
			RelativePoint: "CENTER",
			X:             0,
			Y:             0,
		},
		Tracking: Tracking{
			ItemID: DefaultItemID,
			BuffID: DefaultBuffID,
		},
	}
}
