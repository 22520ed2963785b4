package formatter

import (
	"fmt"
	"io"

	"github.com/penwyp/go-entparser/internal/analyzer"
	"github.com/penwyp/go-entparser/internal/util"
)

// SummaryFormatter prints the report path and a one-line run summary.
type SummaryFormatter struct{}

// NewSummaryFormatter creates a new instance of SummaryFormatter.
func NewSummaryFormatter() *SummaryFormatter {
	return &SummaryFormatter{}
}

// Format writes the summary of result to w.
func (f *SummaryFormatter) Format(w io.Writer, result *analyzer.Result) error {
	if _, err := fmt.Fprintln(w, util.FormatSuccess("Report written: "+result.ReportPath)); err != nil {
		return err
	}

	line := fmt.Sprintf("%d files, %d checks, %d report lines", result.FilesScanned, result.EventsParsed, result.EventsWritten)
	if result.LinesSkipped > 0 {
		line += fmt.Sprintf(", %d lines skipped", result.LinesSkipped)
	}
	if result.FilesSkipped > 0 {
		line += fmt.Sprintf(", %d files skipped", result.FilesSkipped)
	}
	if result.FilesCached > 0 {
		line += fmt.Sprintf(", %d files unchanged", result.FilesCached)
	}
	_, err := fmt.Fprintf(w, "%s (%s)\n", line, util.FormatDuration(result.Duration))
	return err
}
