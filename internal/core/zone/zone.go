package zone

import (
	"fmt"
	"time"
	_ "time/tzdata" // fallback when the host has no zone database

	"github.com/penwyp/go-entparser/internal/core/model"
)

// Normalizer converts wall-clock times recorded in a source zone to UTC.
type Normalizer struct {
	source *time.Location
}

// NewNormalizer loads the source zone. "" and "Local" select the host zone.
func NewNormalizer(zoneID string) (*Normalizer, error) {
	loc, err := Load(zoneID)
	if err != nil {
		return nil, err
	}
	return &Normalizer{source: loc}, nil
}

// Load resolves a zone identifier against the host zone database.
func Load(zoneID string) (*time.Location, error) {
	if zoneID == "" || zoneID == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(zoneID)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v\nValid examples: Local, UTC, America/New_York, Europe/London, Australia/Sydney",
			model.ErrUnknownTimeZone, zoneID, err)
	}
	return loc, nil
}

// Source returns the zone events are recorded in.
func (n *Normalizer) Source() *time.Location {
	return n.source
}

// Normalize reads the wall-clock fields of local as a time in the source zone
// and returns the same instant in UTC. The source zone's offset for that
// specific date is used, so daylight saving is honoured.
func (n *Normalizer) Normalize(local time.Time) time.Time {
	return time.Date(local.Year(), local.Month(), local.Day(),
		local.Hour(), local.Minute(), local.Second(), local.Nanosecond(), n.source).UTC()
}

// NormalizeAll rewrites the timestamps of events in place.
func (n *Normalizer) NormalizeAll(events []model.Event) {
	for i := range events {
		events[i].Timestamp = n.Normalize(events[i].Timestamp)
	}
}
