package app

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"gitlab.com/tinyland/lab/helmwatch/pkg/components"
	"gitlab.com/tinyland/lab/helmwatch/pkg/display"
	"gitlab.com/tinyland/lab/helmwatch/pkg/events"
	"gitlab.com/tinyland/lab/helmwatch/pkg/feed"
	"gitlab.com/tinyland/lab/helmwatch/pkg/reminder"
	"gitlab.com/tinyland/lab/helmwatch/pkg/settings"
	"gitlab.com/tinyland/lab/helmwatch/pkg/theme"
	"gitlab.com/tinyland/lab/helmwatch/pkg/widgets"
)

// iconZone is the bubblezone id for drag hit-testing on the icon.
const iconZone = "helmwatch-icon"

// Model is the root bubbletea model. It owns the controller, the memory
// display adapter the widgets render from, and the attached event feed.
type Model struct {
	cfg    *settings.Settings
	ctl    *reminder.Controller
	mem    *display.Memory
	src    feed.Source
	logger *slog.Logger

	icon   *widgets.IconWidget
	banner *widgets.BannerWidget
	zones  *zone.Manager
	keys   KeyMap

	width, height int
	status        string
	showHelp      bool
	feedDone      bool

	dragging       bool
	dragDX, dragDY int
}

// NewModel builds the root model around the given settings and feed.
func NewModel(cfg *settings.Settings, src feed.Source, logger *slog.Logger) *Model {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	mem := display.NewMemory(cfg.Position)
	return &Model{
		cfg:    cfg,
		ctl:    reminder.New(cfg, mem, logger),
		mem:    mem,
		src:    src,
		logger: logger,
		icon:   widgets.NewIconWidget(),
		banner: widgets.NewBannerWidget(),
		zones:  zone.New(),
		keys:   DefaultKeyMap(),
	}
}

// Controller exposes the reminder controller, used by tests to inject
// events without a feed.
func (m *Model) Controller() *reminder.Controller {
	return m.ctl
}

// Init starts the evaluation ticker and the feed pump.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(TickCmd(events.TickPeriod), NextEventCmd(m.src))
}

// Update is the single dispatch point for host events, ticks, keys, and
// mouse input.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case TickEvent:
		m.ctl.Handle(events.Tick(msg.Time))
		return m, TickCmd(events.TickPeriod)

	case FeedEvent:
		m.ctl.Handle(msg.Event)
		return m, NextEventCmd(m.src)

	case FeedClosedEvent:
		m.feedDone = true
		if msg.Err != nil {
			m.logger.Warn("event feed failed", "error", msg.Err)
			m.status = "Event feed lost."
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		// An open overlay owns the pointer, which is the host's
		// cursor-in-UI-mode condition.
		m.ctl.SetCameraInUI(m.showHelp)

	case key.Matches(msg, m.keys.ToggleEnabled):
		m.status = m.ctl.ApplyCommand(settings.CmdToggleEnabled)

	case key.Matches(msg, m.keys.ToggleOutside):
		m.status = m.ctl.ApplyCommand(settings.CmdToggleOutsideCombat)

	case key.Matches(msg, m.keys.ToggleTimer):
		m.status = m.ctl.ApplyCommand(settings.CmdToggleTimer)

	case key.Matches(msg, m.keys.ToggleWarning):
		m.status = m.ctl.ApplyCommand(settings.CmdToggleWarning)
	}

	return m, nil
}

// handleMouse implements icon dragging. The drag only moves the live
// anchor; persistence happens in the controller's drag tracker on the next
// tick. LockPosition disables dragging entirely.
func (m *Model) handleMouse(msg tea.MouseMsg) {
	if m.cfg.LockPosition {
		return
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return
		}
		if z := m.zones.Get(iconZone); z != nil && z.InBounds(msg) {
			ix, iy := m.iconCell()
			m.dragging = true
			m.dragDX = msg.X - ix
			m.dragDY = msg.Y - iy
		}

	case tea.MouseActionMotion:
		if !m.dragging {
			return
		}
		m.mem.SetAnchor(settings.Position{
			Point:         "TOPLEFT",
			Relative:      "screen",
			RelativePoint: "TOPLEFT",
			X:             float64(msg.X - m.dragDX),
			Y:             float64(msg.Y - m.dragDY),
		})

	case tea.MouseActionRelease:
		m.dragging = false
	}
}

// View renders one frame: banner or icon (never both), plus the status
// line, with the help overlay replacing the body while open.
func (m *Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}

	bodyH := m.height - 1
	var body string
	switch {
	case m.showHelp:
		body = m.helpView(bodyH)
	case m.mem.BannerVisible:
		body = m.banner.View(m.width, bodyH)
	case m.mem.IconVisible:
		m.icon.Set(m.mem.IconText, m.mem.IconColor)
		x, y := m.iconCell()
		body = placeAt(m.zones.Mark(iconZone, m.icon.View()), x, y, m.width, bodyH)
	default:
		body = strings.Repeat("\n", max(bodyH-1, 0))
	}

	return m.zones.Scan(body + "\n" + m.statusLine())
}

// iconCell resolves the live anchor to the icon's top-left terminal cell,
// clamped so the box stays on screen.
func (m *Model) iconCell() (int, int) {
	iw, ih := m.icon.MinSize()
	p := m.mem.Anchor()

	x, y := int(p.X), int(p.Y)
	if p.Point == "CENTER" {
		x += (m.width - iw) / 2
		y += (m.height - 1 - ih) / 2
	}

	x = clamp(x, 0, m.width-iw)
	y = clamp(y, 0, m.height-1-ih)
	return x, y
}

// statusLine renders the bottom row: last confirmation, optional debug
// state, and the help hint.
func (m *Model) statusLine() string {
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Current.Dim))

	left := m.status
	if left == "" && m.feedDone {
		left = "Event feed ended."
	}
	if m.cfg.DebugMode {
		st := m.ctl.State()
		left += fmt.Sprintf("  [combat=%t helm=%t remaining=%.1f cooldown=%.1f]",
			st.InCombat, st.HelmEquipped, st.BuffRemaining, st.CooldownDisplay)
	}

	hint := "? help · q quit"
	gap := m.width - components.VisibleLen(left) - components.VisibleLen(hint)
	if gap < 1 {
		return dim.Render(components.Truncate(left, m.width))
	}
	return dim.Render(left + strings.Repeat(" ", gap) + hint)
}

// helpView lists the keybindings, one per row, vertically padded.
func (m *Model) helpView(height int) string {
	keyStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Current.Foreground)).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Current.Dim))

	var rows []string
	for _, b := range m.keys.bindings() {
		h := b.Help()
		rows = append(rows, fmt.Sprintf("  %s  %s",
			keyStyle.Render(components.PadRight(h.Key, 6)),
			descStyle.Render(h.Desc)))
	}

	for len(rows) < height {
		rows = append(rows, "")
	}
	if len(rows) > height {
		rows = rows[:height]
	}
	return strings.Join(rows, "\n")
}

// placeAt positions a rendered block at cell (x, y) on a width×height
// canvas of blank lines.
func placeAt(block string, x, y, width, height int) string {
	blockLines := strings.Split(block, "\n")
	lines := make([]string, height)

	for i, bl := range blockLines {
		row := y + i
		if row < 0 || row >= height {
			continue
		}
		line := strings.Repeat(" ", max(x, 0)) + bl
		lines[row] = components.Truncate(line, width)
	}
	return strings.Join(lines, "\n")
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
