package report

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/penwyp/go-entparser/internal/core/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(y int, m time.Month, d, h, min, s int) time.Time {
	return time.Date(y, m, d, h, min, s, 0, time.UTC)
}

func TestFileName(t *testing.T) {
	events := []model.Event{
		{Timestamp: at(2024, time.January, 1, 10, 0, 0), Location: "edge", PrunedCount: "3"},
		{Timestamp: at(2024, time.January, 2, 10, 0, 0), Location: "edge", PrunedCount: "3"},
	}

	name, err := FileName(events)

	require.NoError(t, err)
	assert.Equal(t, "01-01-2024 - 01-02-2024.txt", name)
}

func TestFileNameEmpty(t *testing.T) {
	_, err := FileName(nil)
	assert.ErrorIs(t, err, ErrNoEvents)
}

func TestFormatLine(t *testing.T) {
	line := FormatLine(model.Event{
		Timestamp:   at(2024, time.March, 5, 7, 8, 9),
		Location:    "prif teak",
		PrunedCount: "3, 2",
	})

	assert.Equal(t, "03/05/2024 07:08:09 prif teak 3, 2", line)
}

func TestRenderDaySeparators(t *testing.T) {
	tests := []struct {
		name   string
		events []model.Event
		want   []string
	}{
		{
			name: "same day has no separator",
			events: []model.Event{
				{Timestamp: at(2024, time.January, 1, 1, 0, 0), Location: "edge", PrunedCount: "1"},
				{Timestamp: at(2024, time.January, 1, 23, 0, 0), Location: "seer", PrunedCount: "2"},
			},
			want: []string{
				"01/01/2024 01:00:00 edge 1",
				"01/01/2024 23:00:00 seer 2",
			},
		},
		{
			name: "day change",
			events: []model.Event{
				{Timestamp: at(2024, time.January, 1, 23, 59, 59), Location: "edge", PrunedCount: "1"},
				{Timestamp: at(2024, time.January, 2, 0, 0, 0), Location: "edge", PrunedCount: "2"},
			},
			want: []string{
				"01/01/2024 23:59:59 edge 1",
				DaySeparator,
				"01/02/2024 00:00:00 edge 2",
			},
		},
		{
			name: "same day of month in a different month",
			events: []model.Event{
				{Timestamp: at(2024, time.January, 5, 12, 0, 0), Location: "edge", PrunedCount: "1"},
				{Timestamp: at(2024, time.February, 5, 12, 0, 0), Location: "edge", PrunedCount: "2"},
			},
			want: []string{
				"01/05/2024 12:00:00 edge 1",
				DaySeparator,
				"02/05/2024 12:00:00 edge 2",
			},
		},
		{
			name: "separator compares utc dates",
			events: []model.Event{
				{Timestamp: at(2024, time.January, 1, 20, 0, 0), Location: "edge", PrunedCount: "1"},
				{Timestamp: at(2024, time.January, 2, 3, 0, 0).In(time.FixedZone("X", -8*3600)), Location: "edge", PrunedCount: "2"},
			},
			want: []string{
				"01/01/2024 20:00:00 edge 1",
				DaySeparator,
				"01/02/2024 03:00:00 edge 2",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Render(&buf, tt.events))
			assert.Equal(t, strings.Join(tt.want, "\n")+"\n", buf.String())
		})
	}
}

func TestDaySeparatorIsTildes(t *testing.T) {
	assert.Equal(t, 34, len(DaySeparator))
	assert.Equal(t, "", strings.Trim(DaySeparator, "~"))
}

func TestWrite(t *testing.T) {
	dir := t.TempDir()
	events := []model.Event{
		{Timestamp: at(2024, time.January, 1, 10, 0, 0), Location: "edge", PrunedCount: "3"},
		{Timestamp: at(2024, time.January, 2, 10, 0, 0), Location: "edge", PrunedCount: "3"},
	}

	path, err := Write(events, dir)

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "01-01-2024 - 01-02-2024.txt"), path)
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "01/01/2024 10:00:00 edge 3\n"+DaySeparator+"\n01/02/2024 10:00:00 edge 3\n", string(content))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary file should be renamed away")
}

func TestWriteOverwritesExisting(t *testing.T) {
	dir := t.TempDir()
	existing := filepath.Join(dir, "01-01-2024 - 01-01-2024.txt")
	require.NoError(t, os.WriteFile(existing, []byte("old content\nmore old content\n"), 0644))

	path, err := Write([]model.Event{
		{Timestamp: at(2024, time.January, 1, 10, 0, 0), Location: "edge", PrunedCount: "1"},
	}, dir)

	require.NoError(t, err)
	assert.Equal(t, existing, path)
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "01/01/2024 10:00:00 edge 1\n", string(content))
}

func TestWriteEmpty(t *testing.T) {
	dir := t.TempDir()

	_, err := Write(nil, dir)

	assert.ErrorIs(t, err, ErrNoEvents)
	entries, _ := os.ReadDir(dir)
	assert.Empty(t, entries)
}

func TestWriteMissingArchive(t *testing.T) {
	_, err := Write([]model.Event{
		{Timestamp: at(2024, time.January, 1, 10, 0, 0), Location: "edge", PrunedCount: "1"},
	}, filepath.Join(t.TempDir(), "missing"))

	assert.ErrorIs(t, err, os.ErrNotExist)
}
