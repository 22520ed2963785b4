package location

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dlclark/regexp2"
	toml "github.com/pelletier/go-toml/v2"
)

// Entry maps a location name to the alias pattern recognised in chat lines.
// Patterns use .NET regular expression syntax and are matched case-insensitively.
type Entry struct {
	Name    string `toml:"name"`
	Pattern string `toml:"pattern"`
}

// Table is an ordered, versioned list of location entries.
type Table struct {
	Version int     `toml:"version"`
	Entries []Entry `toml:"location"`
}

// Validate checks that every entry has a name and a pattern that compiles.
func (t Table) Validate() error {
	if len(t.Entries) == 0 {
		return errors.New("location table is empty")
	}
	seen := make(map[string]struct{}, len(t.Entries))
	for i, e := range t.Entries {
		name := strings.TrimSpace(e.Name)
		if name == "" {
			return fmt.Errorf("location entry %d: missing name", i)
		}
		if _, dup := seen[name]; dup {
			return fmt.Errorf("location entry %d: duplicate name %q", i, name)
		}
		seen[name] = struct{}{}
		if strings.TrimSpace(e.Pattern) == "" {
			return fmt.Errorf("location %q: missing pattern", name)
		}
		if _, err := regexp2.Compile(e.Pattern, regexp2.IgnoreCase); err != nil {
			return fmt.Errorf("location %q: %w", name, err)
		}
	}
	return nil
}

// LoadTable reads a location table from a TOML file of the form
//
//	version = 1
//
//	[[location]]
//	name = "draynor"
//	pattern = 'dray(?:nor)?'
func LoadTable(path string) (Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return Table{}, fmt.Errorf("open location table: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Table{}, fmt.Errorf("read location table: %w", err)
	}

	var t Table
	if err := toml.Unmarshal(bytes, &t); err != nil {
		return Table{}, fmt.Errorf("parse location table: %w", err)
	}
	if err := t.Validate(); err != nil {
		return Table{}, err
	}
	return t, nil
}

// SaveTable writes t to path as TOML.
func SaveTable(path string, t Table) error {
	bytes, err := toml.Marshal(t)
	if err != nil {
		return fmt.Errorf("marshal location table: %w", err)
	}
	if err := os.WriteFile(path, bytes, 0o644); err != nil {
		return fmt.Errorf("write location table: %w", err)
	}
	return nil
}
