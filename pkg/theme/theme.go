// Package theme holds the color palettes for the reminder widgets. The
// directive colors (green countdown, red decay, white bash prompt) come
// from the active theme so high-contrast terminals can adjust them.
package theme

import (
	"sort"
	"strings"
	"sync"
)

// Theme defines the complete color palette for the reminder.
type Theme struct {
	Name string

	// Base colors
	Background string // hex color e.g. "#1e1e1e"
	Foreground string // hex color
	Dim        string // dimmed text (status line, hints)

	// Icon widget
	Border      string // icon border while the buff runs
	BorderAlert string // icon border once the buff has lapsed

	// Directive text colors
	BuffCountdown string // green - active buff countdown
	ExpiryDecay   string // red - post-expiry decaying countdown
	BashPrompt    string // white - "Bash" text

	// Banner
	BannerText string // full-screen warning text
}

// Current holds the active theme (set via SetCurrent).
var Current Theme

var (
	mu       sync.RWMutex
	registry = map[string]Theme{}
)

func init() {
	registerBuiltins()
	Current = defaultTheme()
}

// Get returns a named theme, falling back to the default if not found.
func Get(name string) Theme {
	mu.RLock()
	defer mu.RUnlock()
	if t, ok := registry[strings.ToLower(name)]; ok {
		return t
	}
	return registry["default"]
}

// Names returns all available theme names sorted alphabetically.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SetCurrent sets the active theme by name.
func SetCurrent(name string) {
	Current = Get(name)
}

// register adds a theme to the registry under its lowercase name.
func register(t Theme) {
	mu.Lock()
	defer mu.Unlock()
	registry[strings.ToLower(t.Name)] = t
}
