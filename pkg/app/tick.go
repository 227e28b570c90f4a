package app

import (
	"errors"
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"gitlab.com/tinyland/lab/helmwatch/pkg/feed"
)

// TickCmd returns a bubbletea Cmd that sends a TickEvent after the given
// duration. This drives the 250ms evaluation cycle.
func TickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return TickEvent{Time: t}
	})
}

// NextEventCmd returns a Cmd that blocks on the feed's next event and
// delivers it as a FeedEvent. A clean io.EOF arrives as FeedClosedEvent
// with a nil error; any other failure carries the error.
func NextEventCmd(src feed.Source) tea.Cmd {
	return func() tea.Msg {
		ev, err := src.Next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return FeedClosedEvent{}
			}
			return FeedClosedEvent{Err: err}
		}
		return FeedEvent{Event: ev}
	}
}
