// Package feed provides the event sources helmwatch can attach to. The
// game host pipes newline-delimited JSON notifications in; a YAML scenario
// file replays a scripted session for demos; the in-memory script source
// backs tests. All sources implement the same pull interface and end the
// stream with io.EOF.
package feed

import (
	"bufio"
	"encoding/json"
	"io"
	"log/slog"
	"time"

	"gitlab.com/tinyland/lab/helmwatch/pkg/events"
)

// Source delivers host events one at a time. Next returns io.EOF when the
// stream ends; any other error is fatal for the source.
type Source interface {
	// Name identifies the source in logs.
	Name() string
	// Next blocks until the next event is available.
	Next() (events.Event, error)
	// Close releases the underlying stream.
	Close() error
}

// wireEvent is the JSONL wire format for a single host notification.
// Unknown types and malformed lines are skipped.
type wireEvent struct {
	Type      string  `json:"type"`
	InCombat  bool    `json:"in_combat"`
	Slot      string  `json:"slot"`
	ItemID    int     `json:"item_id"`
	Unit      string  `json:"unit"`
	AbilityID int     `json:"ability_id"`
	Gained    bool    `json:"gained"`
	Remaining float64 `json:"remaining"`
}

// JSONL reads newline-delimited JSON events from a reader, typically the
// host's event pipe on stdin.
type JSONL struct {
	r      io.ReadCloser
	scan   *bufio.Scanner
	logger *slog.Logger
	now    func() time.Time
}

// NewJSONL wraps r as an event source. A nil logger discards skip logs.
func NewJSONL(r io.ReadCloser, logger *slog.Logger) *JSONL {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &JSONL{
		r:      r,
		scan:   bufio.NewScanner(r),
		logger: logger,
		now:    time.Now,
	}
}

// Name identifies the source in logs.
func (j *JSONL) Name() string { return "jsonl" }

// Next returns the next decodable event, skipping blank and malformed
// lines. Returns io.EOF at end of stream.
func (j *JSONL) Next() (events.Event, error) {
	for j.scan.Scan() {
		line := j.scan.Bytes()
		if len(line) == 0 {
			continue
		}

		var w wireEvent
		if err := json.Unmarshal(line, &w); err != nil {
			j.logger.Debug("skipping malformed event line", "error", err)
			continue
		}

		ev, ok := w.toEvent(j.now())
		if !ok {
			j.logger.Debug("skipping unknown event type", "type", w.Type)
			continue
		}
		return ev, nil
	}

	if err := j.scan.Err(); err != nil {
		return events.Event{}, err
	}
	return events.Event{}, io.EOF
}

// Close closes the underlying reader.
func (j *JSONL) Close() error { return j.r.Close() }

// toEvent maps a wire record onto the typed variant. The bool result is
// false for unrecognized types.
func (w wireEvent) toEvent(now time.Time) (events.Event, bool) {
	switch w.Type {
	case "loaded":
		return events.Event{Kind: events.KindLoaded, Time: now}, true
	case "combat":
		return events.Event{Kind: events.KindCombat, InCombat: w.InCombat, Time: now}, true
	case "equipment":
		return events.Event{Kind: events.KindEquipment, Slot: w.Slot, ItemID: w.ItemID, Time: now}, true
	case "buff":
		return events.Event{
			Kind:      events.KindBuff,
			Unit:      w.Unit,
			AbilityID: w.AbilityID,
			Gained:    w.Gained,
			Remaining: w.Remaining,
			Time:      now,
		}, true
	}
	return events.Event{}, false
}

// Script is an in-memory source that replays a fixed event slice, then
// reports io.EOF. It backs tests and the built-in demo.
type Script struct {
	queue []events.Event
}

// NewScript returns a source that yields evs in order.
func NewScript(evs ...events.Event) *Script {
	return &Script{queue: evs}
}

// Name identifies the source in logs.
func (s *Script) Name() string { return "script" }

// Next pops the next queued event or reports io.EOF.
func (s *Script) Next() (events.Event, error) {
	if len(s.queue) == 0 {
		return events.Event{}, io.EOF
	}
	ev := s.queue[0]
	s.queue = s.queue[1:]
	return ev, nil
}

// Close is a no-op for the in-memory source.
func (s *Script) Close() error { return nil }

// compile-time checks that all sources satisfy the interface.
var (
	_ Source = (*JSONL)(nil)
	_ Source = (*Script)(nil)
	_ Source = (*Scenario)(nil)
)
