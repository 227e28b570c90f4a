package settings

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Load reads settings from the standard config path.
// Search order:
//  1. $XDG_CONFIG_HOME/helmwatch/settings.toml
//  2. ~/.config/helmwatch/settings.toml
//
// If no file exists, returns Default().
func Load() (*Settings, error) {
	for _, p := range searchPaths() {
		if _, err := os.Stat(p); err == nil {
			return LoadFromFile(p)
		}
	}
	return Default(), nil
}

// LoadFromFile reads settings from a specific file path.
func LoadFromFile(path string) (*Settings, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}
	defer f.Close()
	return LoadFromReader(f)
}

// LoadFromReader decodes settings over the defaults, so fields absent from
// the file keep their default values. The version tag is forced to the
// current schema version; version 1 has no migration logic.
func LoadFromReader(r io.Reader) (*Settings, error) {
	s := Default()
	if _, err := toml.NewDecoder(r).Decode(s); err != nil {
		return nil, fmt.Errorf("decode settings: %w", err)
	}
	s.Version = SchemaVersion
	return s, nil
}

// Save writes settings to the given path, creating parent directories as
// needed. The host calls this once on session end.
func Save(path string, s *Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create settings dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create settings file: %w", err)
	}
	defer f.Close()
	if err := toml.NewEncoder(f).Encode(s); err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	return nil
}

// DefaultPath returns the first entry of the search order, used as the
// write target when no explicit -config flag was given.
func DefaultPath() string {
	return searchPaths()[0]
}

// searchPaths returns the ordered list of settings file paths to try.
func searchPaths() []string {
	home, _ := os.UserHomeDir()
	var paths []string

	xdg := xdgConfigHome(home)
	paths = append(paths, filepath.Join(xdg, "helmwatch", "settings.toml"))

	// If XDG_CONFIG_HOME was explicitly set, also try the fallback default.
	defaultXDG := filepath.Join(home, ".config")
	if xdg != defaultXDG {
		paths = append(paths, filepath.Join(defaultXDG, "helmwatch", "settings.toml"))
	}

	return paths
}

// xdgConfigHome returns XDG_CONFIG_HOME or ~/.config as fallback.
func xdgConfigHome(home string) string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	return filepath.Join(home, ".config")
}
