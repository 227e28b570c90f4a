// Package app provides the Bubbletea application that hosts the reminder:
// it pulls events from the attached feed, forwards them to the controller,
// and renders the icon and banner from the display adapter's state each
// frame. The Elm update loop is the single thread the core's no-reentrancy
// contract relies on.
package app

import (
	"time"

	"gitlab.com/tinyland/lab/helmwatch/pkg/events"
)

// FeedEvent carries the next host notification from the feed goroutine
// back into the bubbletea update loop.
type FeedEvent struct {
	Event events.Event
}

// FeedClosedEvent signals that the feed ended. Err is nil on a clean EOF;
// the app keeps ticking either way so the widgets stay live.
type FeedClosedEvent struct {
	Err error
}

// TickEvent is sent by the periodic ticker and drives the evaluation cycle.
type TickEvent struct {
	Time time.Time
}
