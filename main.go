// helmwatch is a combat reminder for a tracked helm and its on-use buff.
//
// It watches a host event feed (combat state, equipment changes, buff gains
// and losses), runs the reminder's condition engine every 250ms, and renders
// either a draggable countdown icon or a full-screen warning banner in the
// terminal.
//
// Usage:
//
//	helmwatch [flags]
//
// Flags:
//
//	-config string  Path to settings file (default: ~/.config/helmwatch/settings.toml)
//	-events string  Read JSONL host events from a file, or "-" for stdin
//	-replay string  Replay a YAML scenario file as the event feed
//	-theme string   Color theme (see -list-themes)
//	-list-themes    Print available themes and exit
//	-demo           Run the built-in demo scenario
//	-verbose        Enable verbose logging
//	-version        Print version and exit
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"gitlab.com/tinyland/lab/helmwatch/pkg/app"
	"gitlab.com/tinyland/lab/helmwatch/pkg/events"
	"gitlab.com/tinyland/lab/helmwatch/pkg/feed"
	"gitlab.com/tinyland/lab/helmwatch/pkg/settings"
	"gitlab.com/tinyland/lab/helmwatch/pkg/theme"
)

var (
	version = "0.1.0"
	commit  = "dev"
	date    = "unknown"
)

func main() {
	var (
		configPath = flag.String("config", "", "Path to settings file")
		eventsPath = flag.String("events", "", "Read JSONL host events from a file, or \"-\" for stdin")
		replayPath = flag.String("replay", "", "Replay a YAML scenario file as the event feed")
		themeName  = flag.String("theme", "", "Color theme")
		listThemes = flag.Bool("list-themes", false, "Print available themes and exit")
		runDemo    = flag.Bool("demo", false, "Run the built-in demo scenario")
		verbose    = flag.Bool("verbose", false, "Enable verbose logging")
		showVer    = flag.Bool("version", false, "Print version and exit")
	)
	flag.Parse()

	if *showVer {
		fmt.Printf("helmwatch %s (%s) built %s\n", version, commit, date)
		os.Exit(0)
	}

	if *listThemes {
		for _, name := range theme.Names() {
			fmt.Println(name)
		}
		os.Exit(0)
	}

	logLevel := slog.LevelInfo
	if *verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))

	if *themeName != "" {
		theme.SetCurrent(*themeName)
	}

	// Without a real terminal lipgloss would still emit escape codes; drop
	// to plain output so piped runs stay readable.
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	if *configPath == "" {
		*configPath = settings.DefaultPath()
	}

	cfg, err := settings.LoadFromFile(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load settings: %v\n", err)
		os.Exit(1)
	}

	src, err := openFeed(*eventsPath, *replayPath, *runDemo, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open event feed: %v\n", err)
		os.Exit(1)
	}
	defer src.Close()

	logger.Info("starting helmwatch",
		"feed", src.Name(),
		"item", cfg.Tracking.ItemID,
		"buff", cfg.Tracking.BuffID,
	)

	zone.NewGlobal()
	model := app.NewModel(cfg, src, logger)
	model.Controller().Handle(events.Event{Kind: events.KindLoaded, Time: time.Now()})

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		logger.Error("TUI error", "error", err)
		os.Exit(1)
	}

	// Persist toggles and the dragged icon position.
	if err := settings.Save(*configPath, cfg); err != nil {
		logger.Warn("failed to save settings", "error", err)
	}
}

// openFeed picks the event source: scenario replay, JSONL stream, the demo
// script, or an empty feed when nothing was requested.
func openFeed(eventsPath, replayPath string, demo bool, logger *slog.Logger) (feed.Source, error) {
	switch {
	case replayPath != "":
		return feed.OpenScenario(replayPath)

	case eventsPath == "-":
		return feed.NewJSONL(os.Stdin, logger), nil

	case eventsPath != "":
		f, err := os.Open(eventsPath)
		if err != nil {
			return nil, err
		}
		return feed.NewJSONL(f, logger), nil

	case demo:
		return feed.ParseScenario([]byte(demoScenario))
	}

	return feed.NewScript(), nil
}

// demoScenario walks the full reminder lifecycle: enter combat, equip the
// tracked helm, see the bash prompt, use the buff, then lose it and get the
// warning again.
const demoScenario = `
name: lifecycle-demo
steps:
  - type: combat
    in_combat: true
  - after: 500ms
    type: equipment
    slot: head
    item_id: 22736
  - after: 4s
    type: buff
    unit: player
    ability_id: 28131
    gained: true
    remaining: 60
  - after: 8s
    type: buff
    unit: player
    ability_id: 28131
    gained: false
`
