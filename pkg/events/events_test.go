package events

import (
	"testing"
	"time"
)

func TestKindStrings(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindLoaded, "loaded"},
		{KindCombat, "combat"},
		{KindEquipment, "equipment"},
		{KindBuff, "buff"},
		{KindTick, "tick"},
		{Kind(42), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestIsHeadSlot(t *testing.T) {
	tests := []struct {
		name string
		ev   Event
		want bool
	}{
		{"head slot", Event{Kind: KindEquipment, Slot: SlotHead}, true},
		{"chest slot", Event{Kind: KindEquipment, Slot: "chest"}, false},
		{"wrong kind", Event{Kind: KindBuff, Slot: SlotHead}, false},
	}
	for _, tt := range tests {
		if got := tt.ev.IsHeadSlot(); got != tt.want {
			t.Errorf("%s: IsHeadSlot = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestIsPlayerBuff(t *testing.T) {
	const ability = 28131

	tests := []struct {
		name string
		ev   Event
		want bool
	}{
		{"player tracked buff", Event{Kind: KindBuff, Unit: UnitPlayer, AbilityID: ability}, true},
		{"other unit", Event{Kind: KindBuff, Unit: "target", AbilityID: ability}, false},
		{"other ability", Event{Kind: KindBuff, Unit: UnitPlayer, AbilityID: 1}, false},
		{"wrong kind", Event{Kind: KindTick, Unit: UnitPlayer, AbilityID: ability}, false},
	}
	for _, tt := range tests {
		if got := tt.ev.IsPlayerBuff(ability); got != tt.want {
			t.Errorf("%s: IsPlayerBuff = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestDeferredZeroTokenNeverDue(t *testing.T) {
	var d Deferred
	var tok Token

	if tok.Pending() {
		t.Error("zero token should not be pending")
	}
	if d.Due(tok, time.Now().Add(time.Hour)) {
		t.Error("zero token should never be due")
	}
}

func TestDeferredComesDueAtDeadline(t *testing.T) {
	var d Deferred
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tok := d.Schedule(now.Add(BuffLossDeferral))

	if !tok.Pending() {
		t.Error("scheduled token should be pending")
	}
	if d.Due(tok, now) {
		t.Error("token due before deadline")
	}
	if d.Due(tok, now.Add(50*time.Millisecond)) {
		t.Error("token due mid-deferral")
	}
	if !d.Due(tok, now.Add(BuffLossDeferral)) {
		t.Error("token should be due exactly at deadline")
	}
	if !d.Due(tok, now.Add(time.Second)) {
		t.Error("token should stay due after deadline")
	}
}

func TestDeferredInvalidateKillsOutstandingTokens(t *testing.T) {
	var d Deferred
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tok := d.Schedule(now.Add(BuffLossDeferral))
	d.Invalidate()

	if d.Due(tok, now.Add(time.Second)) {
		t.Error("invalidated token must never come due")
	}

	// A token minted after Invalidate works normally.
	fresh := d.Schedule(now.Add(BuffLossDeferral))
	if !d.Due(fresh, now.Add(time.Second)) {
		t.Error("fresh token should come due")
	}
}
