package decoder

import (
	"fmt"
	"testing"
	"time"

	"github.com/penwyp/go-entparser/internal/core/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testDate = model.FileDate{Year: 2024, Month: time.January, Day: 1}

func TestDecode(t *testing.T) {
	d := New(nil)

	ev, err := d.Decode("14:30:00 [Clan] Ann: prif teak 3/5", testDate)

	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.January, 1, 14, 30, 0, 0, time.UTC), ev.Timestamp)
	assert.Equal(t, "prif teak", ev.Location)
	assert.Equal(t, "3", ev.PrunedCount)
}

func TestDecodeRecoversEveryTimeAndCount(t *testing.T) {
	d := New(nil)

	for _, tc := range []struct{ h, m, s, c int }{
		{0, 0, 0, 0}, {9, 5, 7, 1}, {12, 34, 56, 2}, {23, 59, 59, 5},
	} {
		line := fmt.Sprintf("%02d:%02d:%02d Bob: edge %d/5", tc.h, tc.m, tc.s, tc.c)
		t.Run(line, func(t *testing.T) {
			ev, err := d.Decode(line, testDate)
			require.NoError(t, err)
			assert.Equal(t, tc.h, ev.Timestamp.Hour())
			assert.Equal(t, tc.m, ev.Timestamp.Minute())
			assert.Equal(t, tc.s, ev.Timestamp.Second())
			assert.Equal(t, fmt.Sprint(tc.c), ev.PrunedCount)
		})
	}
}

func TestDecodeSkips(t *testing.T) {
	d := New(nil)

	tests := []struct {
		name    string
		line    string
		wantErr error
	}{
		{"no marker", "14:30:00 Ann: prif teak 3/4", ErrNoMarker},
		{"no location", "14:30:00 Ann: nothing here 3/5", ErrNoLocation},
		{"bad time", "xx:30:00 Ann: edge 3/5", model.ErrMalformedLine},
		{"too short", "edge 3/5", model.ErrMalformedLine},
		{"count not a digit", "14:30:00 Ann: edge x/5", model.ErrMalformedLine},
		{"marker at start", "/5 edge", model.ErrMalformedLine},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := d.Decode(tt.line, testDate)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestPrunedCountUsesMarkerSlash(t *testing.T) {
	got, err := PrunedCount("14:30:00 Ann/Bob: edge 4/5")
	require.NoError(t, err)
	assert.Equal(t, "4", got)
}

func TestQualifies(t *testing.T) {
	assert.True(t, Qualifies("12:00:00 edge 1/5"))
	assert.False(t, Qualifies("12:00:00 edge 1/4"))
}
