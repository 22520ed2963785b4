package commands

import (
	"testing"
	"time"

	"github.com/penwyp/go-entparser/internal/core/zone"
	"github.com/stretchr/testify/assert"
)

func TestZoneCells(t *testing.T) {
	infos := []zone.Info{
		{ID: "UTC", Offset: 0},
		{ID: "Europe/London", Offset: time.Hour},
		{ID: "Asia/Kolkata", Offset: 5*time.Hour + 30*time.Minute},
	}

	assert.Equal(t, []string{
		"UTC (UTC)",
		"Europe/London (UTC+01:00)",
		"Asia/Kolkata (UTC+05:30)",
	}, zoneCells(infos, ""))
	assert.Equal(t, []string{"Europe/London (UTC+01:00)"}, zoneCells(infos, " EUROPE "))
	assert.Empty(t, zoneCells(infos, "mars"))
}

func TestZonesCommandListsUTC(t *testing.T) {
	out, err := executeCommand(t, "zones", "--filter", "utc")

	assert.NoError(t, err)
	assert.Contains(t, out, "UTC (UTC)")
}
