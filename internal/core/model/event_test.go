package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFileDateAt(t *testing.T) {
	d := FileDate{Year: 2024, Month: time.March, Day: 9}

	got := d.At(14, 30, 5, time.UTC)

	assert.Equal(t, time.Date(2024, time.March, 9, 14, 30, 5, 0, time.UTC), got)
	assert.Equal(t, "2024-03-09", d.String())
}

func TestFileDateAtLocation(t *testing.T) {
	loc := time.FixedZone("EST", -5*3600)
	d := FileDate{Year: 2024, Month: time.January, Day: 1}

	got := d.At(23, 0, 0, loc)

	assert.Equal(t, loc, got.Location())
	assert.Equal(t, time.Date(2024, time.January, 2, 4, 0, 0, 0, time.UTC), got.UTC())
}
