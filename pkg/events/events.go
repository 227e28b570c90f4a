// Package events defines the typed notifications helmwatch consumes from
// the host and the deferred one-shot scheduler used for the post-buff-loss
// re-check. The host's string-keyed callback registration is replaced by a
// tagged variant: one Event struct, a Kind enum, and kind-specific fields.
package events

import "time"

// Kind discriminates the event variants.
type Kind int

const (
	// KindLoaded is the one-shot bootstrap notification.
	KindLoaded Kind = iota
	// KindCombat signals a combat-state change.
	KindCombat
	// KindEquipment signals an inventory-slot change.
	KindEquipment
	// KindBuff signals a buff gain or loss.
	KindBuff
	// KindTick is the periodic evaluation tick.
	KindTick
)

// String returns the kind name for logs and test failures.
func (k Kind) String() string {
	switch k {
	case KindLoaded:
		return "loaded"
	case KindCombat:
		return "combat"
	case KindEquipment:
		return "equipment"
	case KindBuff:
		return "buff"
	case KindTick:
		return "tick"
	}
	return "unknown"
}

// Host timing constants.
const (
	// TickPeriod is the periodic evaluation interval.
	TickPeriod = 250 * time.Millisecond

	// BuffLossDeferral is how long a buff-loss re-check waits so the
	// "buff active" fact settles before recomputation.
	BuffLossDeferral = 100 * time.Millisecond
)

// SlotHead is the only inventory slot the reminder cares about.
const SlotHead = "head"

// UnitPlayer scopes buff events to the player character.
const UnitPlayer = "player"

// Event is the tagged variant delivered to the dispatcher. Only the fields
// relevant to Kind are populated.
type Event struct {
	Kind Kind
	Time time.Time

	// KindCombat
	InCombat bool

	// KindEquipment: Slot names the inventory slot; ItemID is 0 when the
	// slot was emptied.
	Slot   string
	ItemID int

	// KindBuff: Unit scopes the event; AbilityID names the buff; Gained
	// distinguishes gain from loss; Remaining is the buff's remaining
	// seconds at gain time.
	Unit      string
	AbilityID int
	Gained    bool
	Remaining float64
}

// IsHeadSlot reports whether an equipment event concerns the head slot.
func (e Event) IsHeadSlot() bool {
	return e.Kind == KindEquipment && e.Slot == SlotHead
}

// IsPlayerBuff reports whether a buff event concerns the given ability on
// the player unit.
func (e Event) IsPlayerBuff(abilityID int) bool {
	return e.Kind == KindBuff && e.Unit == UnitPlayer && e.AbilityID == abilityID
}

// Tick builds a tick event for the given instant.
func Tick(now time.Time) Event {
	return Event{Kind: KindTick, Time: now}
}
