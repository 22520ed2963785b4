package report

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/penwyp/go-entparser/internal/core/model"
	"github.com/penwyp/go-entparser/internal/util"
)

const (
	fileDateLayout = "01-02-2006"
	lineLayout     = "01/02/2006 15:04:05"
	extension      = ".txt"
)

// DaySeparator is written between events on different calendar days.
var DaySeparator = strings.Repeat("~", 34)

// ErrNoEvents is returned when there is nothing to report.
var ErrNoEvents = errors.New("report has no events")

// FileName derives the report name from the first and last event dates.
func FileName(events []model.Event) (string, error) {
	if len(events) == 0 {
		return "", ErrNoEvents
	}
	first := events[0].Timestamp.UTC().Format(fileDateLayout)
	last := events[len(events)-1].Timestamp.UTC().Format(fileDateLayout)
	return first + " - " + last + extension, nil
}

// FormatLine renders one event as "MM/dd/yyyy HH:mm:ss <location> <count>".
func FormatLine(e model.Event) string {
	return fmt.Sprintf("%s %s %s", e.Timestamp.UTC().Format(lineLayout), e.Location, e.PrunedCount)
}

// Render writes the report body to w.
func Render(w io.Writer, events []model.Event) error {
	bw := bufio.NewWriter(w)
	for i, e := range events {
		if i > 0 && !sameDay(events[i-1], e) {
			if _, err := fmt.Fprintln(bw, DaySeparator); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(bw, FormatLine(e)); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Write renders events into archiveDir and returns the report path. The body
// goes to a temporary file that is renamed into place, so a failure never
// leaves a partial report. An existing report with the same name is replaced.
func Write(events []model.Event, archiveDir string) (string, error) {
	name, err := FileName(events)
	if err != nil {
		return "", err
	}
	path := filepath.Join(archiveDir, name)

	tmp, err := os.CreateTemp(archiveDir, ".report-*.tmp")
	if err != nil {
		return "", fmt.Errorf("create report: %w", err)
	}
	tmpPath := tmp.Name()
	defer func() {
		if err != nil {
			_ = os.Remove(tmpPath)
		}
	}()

	if err = Render(tmp, events); err != nil {
		_ = tmp.Close()
		return "", fmt.Errorf("write report: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return "", fmt.Errorf("close report: %w", err)
	}
	if err = os.Chmod(tmpPath, 0o644); err != nil {
		return "", fmt.Errorf("chmod report: %w", err)
	}
	if err = os.Rename(tmpPath, path); err != nil {
		return "", fmt.Errorf("rename report: %w", err)
	}

	util.LogDebug(fmt.Sprintf("Report written: %s (%d events)", path, len(events)))
	return path, nil
}

func sameDay(a, b model.Event) bool {
	ay, am, ad := a.Timestamp.UTC().Date()
	by, bm, bd := b.Timestamp.UTC().Date()
	return ay == by && am == bm && ad == bd
}
