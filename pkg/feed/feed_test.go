package feed

import (
	"io"
	"strings"
	"testing"
	"time"

	"gitlab.com/tinyland/lab/helmwatch/pkg/events"
)

func TestJSONLDecodesEventStream(t *testing.T) {
	input := `{"type":"loaded"}
{"type":"combat","in_combat":true}
{"type":"equipment","slot":"head","item_id":22736}
{"type":"buff","unit":"player","ability_id":28131,"gained":true,"remaining":60}
`
	src := NewJSONL(io.NopCloser(strings.NewReader(input)), nil)
	defer src.Close()

	wantKinds := []events.Kind{
		events.KindLoaded,
		events.KindCombat,
		events.KindEquipment,
		events.KindBuff,
	}

	for i, want := range wantKinds {
		ev, err := src.Next()
		if err != nil {
			t.Fatalf("event %d: %v", i, err)
		}
		if ev.Kind != want {
			t.Errorf("event %d: Kind = %v, want %v", i, ev.Kind, want)
		}
	}

	if _, err := src.Next(); err != io.EOF {
		t.Errorf("after last event: err = %v, want io.EOF", err)
	}
}

func TestJSONLFieldMapping(t *testing.T) {
	input := `{"type":"buff","unit":"player","ability_id":28131,"gained":false,"remaining":12.5}` + "\n"
	src := NewJSONL(io.NopCloser(strings.NewReader(input)), nil)

	ev, err := src.Next()
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if ev.Unit != events.UnitPlayer {
		t.Errorf("Unit = %q, want player", ev.Unit)
	}
	if ev.AbilityID != 28131 {
		t.Errorf("AbilityID = %d, want 28131", ev.AbilityID)
	}
	if ev.Gained {
		t.Error("Gained should be false")
	}
	if ev.Remaining != 12.5 {
		t.Errorf("Remaining = %f, want 12.5", ev.Remaining)
	}
	if ev.Time.IsZero() {
		t.Error("Time should be stamped at decode")
	}
}

func TestJSONLSkipsMalformedAndUnknownLines(t *testing.T) {
	input := `not json at all
{"type":"teleport"}

{"type":"combat","in_combat":true}
`
	src := NewJSONL(io.NopCloser(strings.NewReader(input)), nil)

	ev, err := src.Next()
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if ev.Kind != events.KindCombat {
		t.Errorf("Kind = %v, want combat", ev.Kind)
	}
}

func TestScriptReplaysInOrder(t *testing.T) {
	src := NewScript(
		events.Event{Kind: events.KindCombat, InCombat: true},
		events.Event{Kind: events.KindTick},
	)

	first, err := src.Next()
	if err != nil || first.Kind != events.KindCombat {
		t.Fatalf("first = %v (%v), want combat", first.Kind, err)
	}
	second, err := src.Next()
	if err != nil || second.Kind != events.KindTick {
		t.Fatalf("second = %v (%v), want tick", second.Kind, err)
	}
	if _, err := src.Next(); err != io.EOF {
		t.Errorf("drained script: err = %v, want io.EOF", err)
	}
}

func TestParseScenario(t *testing.T) {
	data := []byte(`
name: bash-demo
steps:
  - type: combat
    in_combat: true
  - after: 250ms
    type: buff
    unit: player
    ability_id: 28131
    gained: false
`)

	sc, err := ParseScenario(data)
	if err != nil {
		t.Fatalf("ParseScenario: %v", err)
	}
	if sc.Name() != "bash-demo" {
		t.Errorf("Name = %q, want bash-demo", sc.Name())
	}

	var slept []time.Duration
	sc.sleep = func(d time.Duration) { slept = append(slept, d) }
	sc.now = func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }

	first, err := sc.Next()
	if err != nil {
		t.Fatalf("first: %v", err)
	}
	if first.Kind != events.KindCombat || !first.InCombat {
		t.Errorf("first = %+v, want combat enter", first)
	}
	if len(slept) != 0 {
		t.Errorf("zero-delay step slept %v", slept)
	}

	second, err := sc.Next()
	if err != nil {
		t.Fatalf("second: %v", err)
	}
	if second.Kind != events.KindBuff || second.Gained {
		t.Errorf("second = %+v, want buff loss", second)
	}
	if len(slept) != 1 || slept[0] != 250*time.Millisecond {
		t.Errorf("slept = %v, want [250ms]", slept)
	}

	if _, err := sc.Next(); err != io.EOF {
		t.Errorf("drained scenario: err = %v, want io.EOF", err)
	}
}

func TestParseScenarioRejectsUnknownType(t *testing.T) {
	data := []byte(`
steps:
  - type: teleport
`)
	if _, err := ParseScenario(data); err == nil {
		t.Error("expected error for unknown step type")
	}
}

func TestParseScenarioRejectsMalformedYAML(t *testing.T) {
	if _, err := ParseScenario([]byte("steps: [whoops")); err == nil {
		t.Error("expected error for malformed YAML")
	}
}

func TestDurationUnmarshalText(t *testing.T) {
	tests := []struct {
		in      string
		want    time.Duration
		wantErr bool
	}{
		{"", 0, false},
		{"250ms", 250 * time.Millisecond, false},
		{"1s", time.Second, false},
		{"5m", 5 * time.Minute, false},
		{"banana", 0, true},
		{"-3s", 0, true},
	}

	for _, tt := range tests {
		var d Duration
		err := d.UnmarshalText([]byte(tt.in))
		if tt.wantErr {
			if err == nil {
				t.Errorf("UnmarshalText(%q): expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("UnmarshalText(%q): %v", tt.in, err)
			continue
		}
		if d.Duration != tt.want {
			t.Errorf("UnmarshalText(%q) = %v, want %v", tt.in, d.Duration, tt.want)
		}
	}
}
