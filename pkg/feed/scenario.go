package feed

import (
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"gitlab.com/tinyland/lab/helmwatch/pkg/events"
)

// Scenario replays a YAML-scripted event sequence with per-step delays,
// used for demos and manual testing without a live game host.
//
// File format:
//
//	name: bash-demo
//	steps:
//	  - after: 500ms
//	    type: combat
//	    in_combat: true
//	  - after: 1s
//	    type: buff
//	    unit: player
//	    ability_id: 28131
//	    gained: false
type Scenario struct {
	name  string
	steps []scenarioStep
	sleep func(time.Duration)
	now   func() time.Time
}

type scenarioFile struct {
	Name  string         `yaml:"name"`
	Steps []scenarioStep `yaml:"steps"`
}

type scenarioStep struct {
	After Duration `yaml:"after"`

	Type      string  `yaml:"type"`
	InCombat  bool    `yaml:"in_combat"`
	Slot      string  `yaml:"slot"`
	ItemID    int     `yaml:"item_id"`
	Unit      string  `yaml:"unit"`
	AbilityID int     `yaml:"ability_id"`
	Gained    bool    `yaml:"gained"`
	Remaining float64 `yaml:"remaining"`
}

// OpenScenario loads a scenario from a YAML file.
func OpenScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	return ParseScenario(data)
}

// ParseScenario decodes a scenario from YAML bytes.
func ParseScenario(data []byte) (*Scenario, error) {
	var f scenarioFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode scenario: %w", err)
	}

	for i, st := range f.Steps {
		if _, ok := stepKind(st.Type); !ok {
			return nil, fmt.Errorf("scenario step %d: unknown event type %q", i, st.Type)
		}
	}

	return &Scenario{
		name:  f.Name,
		steps: f.Steps,
		sleep: time.Sleep,
		now:   time.Now,
	}, nil
}

// Name returns the scenario's declared name, or "scenario" if unnamed.
func (s *Scenario) Name() string {
	if s.name == "" {
		return "scenario"
	}
	return s.name
}

// Next sleeps the step's delay, then returns the step's event. Reports
// io.EOF after the last step.
func (s *Scenario) Next() (events.Event, error) {
	if len(s.steps) == 0 {
		return events.Event{}, io.EOF
	}
	st := s.steps[0]
	s.steps = s.steps[1:]

	if st.After.Duration > 0 {
		s.sleep(st.After.Duration)
	}

	kind, _ := stepKind(st.Type)
	return events.Event{
		Kind:      kind,
		Time:      s.now(),
		InCombat:  st.InCombat,
		Slot:      st.Slot,
		ItemID:    st.ItemID,
		Unit:      st.Unit,
		AbilityID: st.AbilityID,
		Gained:    st.Gained,
		Remaining: st.Remaining,
	}, nil
}

// Close is a no-op; the file is fully read at open time.
func (s *Scenario) Close() error { return nil }

// stepKind maps a scenario type string to its event kind.
func stepKind(t string) (events.Kind, bool) {
	switch t {
	case "loaded":
		return events.KindLoaded, true
	case "combat":
		return events.KindCombat, true
	case "equipment":
		return events.KindEquipment, true
	case "buff":
		return events.KindBuff, true
	}
	return 0, false
}
