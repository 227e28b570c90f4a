package feed

import (
	"fmt"
	"time"
)

// Duration wraps time.Duration with YAML-friendly string parsing for
// scenario step delays. Supports standard Go duration strings: "250ms",
// "1s", "5m", etc.
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler, which yaml.v3 honors.
func (d *Duration) UnmarshalText(text []byte) error {
	s := string(text)
	if s == "" {
		d.Duration = 0
		return nil
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	if parsed < 0 {
		return fmt.Errorf("negative duration %q not allowed", s)
	}
	d.Duration = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}
