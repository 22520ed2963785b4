package location

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultMatcher(t *testing.T) {
	tests := []struct {
		name      string
		line      string
		wantOK    bool
		wantToken string
		wantEntry string
	}{
		{
			name:      "prifddinas teak",
			line:      "12:00:00 Clan: prif teak 3/5",
			wantOK:    true,
			wantToken: "prif teak",
			wantEntry: "prifddinas",
		},
		{
			name:      "case insensitive",
			line:      "12:00:00 Clan: PRIFF TEAK 3/5",
			wantOK:    true,
			wantToken: "PRIFF TEAK",
			wantEntry: "prifddinas",
		},
		{
			name:      "plural is tolerated and trimmed",
			line:      "12:00:00 Clan: seers 2/5",
			wantOK:    true,
			wantToken: "seer",
			wantEntry: "seers",
		},
		{
			name:      "separate direction word is not captured",
			line:      "12:00:00 Clan: south seer 0/5",
			wantOK:    true,
			wantToken: "seer",
			wantEntry: "seers",
		},
		{
			name:      "joined direction prefix",
			line:      "12:00:00 Clan: nseer 0/5",
			wantOK:    true,
			wantToken: "nseer",
			wantEntry: "seers",
		},
		{
			name:      "short alias",
			line:      "12:00:00 Clan: ge 1/5",
			wantOK:    true,
			wantToken: "ge",
			wantEntry: "grand-exchange",
		},
		{
			name:   "alias inside a longer word is ignored",
			line:   "12:00:00 Bob: gem 3/5",
			wantOK: false,
		},
		{
			name:   "no alias",
			line:   "12:00:00 Someone: nothing here 3/5",
			wantOK: false,
		},
		{
			name:      "rightmost alias wins",
			line:      "12:00:00 Bob: draynor or edge 4/5",
			wantOK:    true,
			wantToken: "edge",
			wantEntry: "edgeville",
		},
		{
			name:      "earlier table entry wins at the same position",
			line:      "12:00:00 Bob: shayzien 2/5",
			wantOK:    true,
			wantToken: "shayzien",
			wantEntry: "shayzien",
		},
		{
			name:      "alias at end of line",
			line:      "12:00:00 Bob: 5/5 fally",
			wantOK:    true,
			wantToken: "fally",
			wantEntry: "falador",
		},
		{
			name:      "xeric destination",
			line:      "12:00:00 Bob: xerics lookout 3/5",
			wantOK:    true,
			wantToken: "lookout",
			wantEntry: "xeric",
		},
		{
			name:   "alias after an accented letter is ignored",
			line:   "12:00:00 Zoëge 3/5",
			wantOK: false,
		},
		{
			name:   "alias after a cedilla is ignored",
			line:   "12:00:00 façarc 2/5",
			wantOK: false,
		},
		{
			name:   "alias followed by an accented letter is ignored",
			line:   "12:00:00 Bob: edgé 1/5",
			wantOK: false,
		},
		{
			name:      "earlier alias used when the rightmost sits inside a word",
			line:      "12:00:00 Bob: edge Zoëge 3/5",
			wantOK:    true,
			wantToken: "edge",
			wantEntry: "edgeville",
		},
		{
			name:      "alias next to non-letter unicode",
			line:      "12:00:00 Bob: «fally» 2/5",
			wantOK:    true,
			wantToken: "fally",
			wantEntry: "falador",
		},
	}

	m := Default()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := m.Match(tt.line)
			require.Equal(t, tt.wantOK, ok)
			if !tt.wantOK {
				return
			}
			assert.Equal(t, tt.wantToken, got.Token)
			assert.Equal(t, tt.wantEntry, got.Name)
		})
	}
}

func TestDefaultTableIsValid(t *testing.T) {
	require.NoError(t, DefaultTable.Validate())
	assert.Equal(t, len(DefaultTable.Entries), Default().Len())
}

func TestTableValidate(t *testing.T) {
	tests := []struct {
		name    string
		table   Table
		wantErr string
	}{
		{"empty", Table{}, "empty"},
		{"missing name", Table{Entries: []Entry{{Pattern: "x"}}}, "missing name"},
		{"missing pattern", Table{Entries: []Entry{{Name: "x"}}}, "missing pattern"},
		{"duplicate name", Table{Entries: []Entry{{Name: "x", Pattern: "a"}, {Name: "x", Pattern: "b"}}}, "duplicate"},
		{"bad pattern", Table{Entries: []Entry{{Name: "x", Pattern: "(a"}}}, `location "x"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.table.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "locations.toml")
	content := `version = 2

[[location]]
name = "harbour"
pattern = 'harb(?:ou?r)?'

[[location]]
name = "mill"
pattern = 'mill'
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	table, err := LoadTable(path)
	require.NoError(t, err)
	assert.Equal(t, 2, table.Version)
	require.Len(t, table.Entries, 2)
	assert.Equal(t, "harbour", table.Entries[0].Name)

	m, err := NewMatcher(table)
	require.NoError(t, err)

	got, ok := m.Match("08:15:00 Ann: Harbour 4/5")
	require.True(t, ok)
	assert.Equal(t, "Harbour", got.Token)
	assert.Equal(t, "harbour", got.Name)

	got, ok = m.Match("08:15:00 Ann: mills 1/5")
	require.True(t, ok)
	assert.Equal(t, "mill", got.Token)

	_, ok = m.Match("08:15:00 Ann: prif teak 4/5")
	assert.False(t, ok)
}

func TestLoadTableErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadTable(filepath.Join(dir, "missing.toml"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("[[location]\nname ="), 0644))
	_, err = LoadTable(bad)
	assert.ErrorContains(t, err, "parse location table")
}

func TestSaveTableRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "locations.toml")

	require.NoError(t, SaveTable(path, DefaultTable))

	loaded, err := LoadTable(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultTable, loaded)
}
