// Package prefs persists the user's directories and time zone between runs.
// Preferences are stored as JSON in ~/.go-entparser/prefs.json.
package prefs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/penwyp/go-entparser/internal/util"
)

// Prefs holds the values the run command falls back to when no flag is given.
type Prefs struct {
	Source   string `json:"Source"`
	Archive  string `json:"Archive"`
	TimeZone string `json:"TimeZone"`
}

const (
	defaultPrefsPath  = "~/.go-entparser/prefs.json"
	defaultSourceDir  = "~/Documents/ChatLogEntParser/ToBeParsed"
	defaultArchiveDir = "~/Documents/ChatLogEntParser/Parsed"
	defaultTimeZone   = "Local"
)

// DefaultPath returns the default preferences file path.
func DefaultPath() string {
	return defaultPrefsPath
}

// Defaults returns the built-in preferences.
func Defaults() Prefs {
	return Prefs{
		Source:   defaultSourceDir,
		Archive:  defaultArchiveDir,
		TimeZone: defaultTimeZone,
	}
}

// Reset returns p with both directories restored to their defaults. The time
// zone is kept.
func (p Prefs) Reset() Prefs {
	d := Defaults()
	p.Source = d.Source
	p.Archive = d.Archive
	return p
}

// Load reads preferences from path, falling back to defaults if the file is
// missing or unreadable. Empty fields are filled from the defaults.
func Load(path string) (Prefs, error) {
	resolved, err := ExpandPath(resolve(path))
	if err != nil {
		return Defaults(), err
	}

	data, err := os.ReadFile(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Defaults(), nil
		}
		util.LogWarnf("Read preferences %s: %v", resolved, err)
		return Defaults(), nil // Graceful degradation
	}

	var p Prefs
	if err := sonic.Unmarshal(data, &p); err != nil {
		util.LogWarnf("Parse preferences %s: %v", resolved, err)
		return Defaults(), nil // Graceful degradation
	}

	if strings.TrimSpace(p.Source) == "" || strings.TrimSpace(p.Archive) == "" {
		p = p.Reset()
	}
	if strings.TrimSpace(p.TimeZone) == "" {
		p.TimeZone = defaultTimeZone
	}
	return p, nil
}

// Save writes preferences to path, creating directories as needed.
func Save(path string, p Prefs) error {
	resolved, err := ExpandPath(resolve(path))
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(resolved), 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}

	data, err := sonic.ConfigStd.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}

	if err := os.WriteFile(resolved, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}
	return nil
}

func resolve(path string) string {
	if strings.TrimSpace(path) == "" {
		return defaultPrefsPath
	}
	return path
}

// ExpandPath expands a leading "~" and makes path absolute.
func ExpandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if trimmed == "~" || strings.HasPrefix(trimmed, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
