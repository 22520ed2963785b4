package model

import "time"

// Event is one location check extracted from a chat log line.
type Event struct {
	Timestamp   time.Time `json:"timestamp"`
	Location    string    `json:"location"`
	PrunedCount string    `json:"prunedCount"`
}

// FileDate is the calendar date encoded in a chat log file name.
type FileDate struct {
	Year  int
	Month time.Month
	Day   int
}

// At returns the wall-clock time on the file date in loc.
func (d FileDate) At(hour, minute, second int, loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, hour, minute, second, 0, loc)
}

// String formats the date as YYYY-MM-DD
func (d FileDate) String() string {
	return d.At(0, 0, 0, time.UTC).Format("2006-01-02")
}

// RunConfig holds the values supplied by the shell for a single run.
type RunConfig struct {
	SourceDir  string
	ArchiveDir string
	TimeZone   string
	// LocationsFile optionally replaces the built-in location table.
	LocationsFile string
}
