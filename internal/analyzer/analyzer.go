package analyzer

import (
	"errors"
	"fmt"
	"time"

	"github.com/penwyp/go-entparser/internal/core/cache"
	"github.com/penwyp/go-entparser/internal/core/decoder"
	"github.com/penwyp/go-entparser/internal/core/location"
	"github.com/penwyp/go-entparser/internal/core/merge"
	"github.com/penwyp/go-entparser/internal/core/model"
	"github.com/penwyp/go-entparser/internal/core/zone"
	"github.com/penwyp/go-entparser/internal/data/parser"
	"github.com/penwyp/go-entparser/internal/data/scanner"
	"github.com/penwyp/go-entparser/internal/presentation/report"
	"github.com/penwyp/go-entparser/internal/util"
)

// Result summarises a completed run. LinesMatched counts lines carrying the
// "/5" marker; EventsParsed counts those that also named a location and decoded.
type Result struct {
	ReportPath    string        `json:"reportPath"`
	FilesScanned  int           `json:"filesScanned"`
	FilesSkipped  int           `json:"filesSkipped"`
	FilesCached   int           `json:"filesCached"`
	LinesRead     int           `json:"linesRead"`
	LinesMatched  int           `json:"linesMatched"`
	LinesSkipped  int           `json:"linesSkipped"`
	EventsParsed  int           `json:"eventsParsed"`
	EventsWritten int           `json:"eventsWritten"`
	Duration      time.Duration `json:"duration"`
}

type Analyzer struct {
	config     model.RunConfig
	scanner    *scanner.FileScanner
	parser     *parser.Parser
	normalizer *zone.Normalizer
}

// New validates cfg and prepares the pipeline. An unknown time zone or an
// invalid location table fails here, before any file is touched.
func New(cfg model.RunConfig) (*Analyzer, error) {
	normalizer, err := zone.NewNormalizer(cfg.TimeZone)
	if err != nil {
		return nil, err
	}

	matcher := location.Default()
	if cfg.LocationsFile != "" {
		table, err := location.LoadTable(cfg.LocationsFile)
		if err != nil {
			return nil, err
		}
		if matcher, err = location.NewMatcher(table); err != nil {
			return nil, err
		}
		util.LogInfof("Using location table %s (%d entries)", cfg.LocationsFile, matcher.Len())
	}

	return &Analyzer{
		config:     cfg,
		scanner:    scanner.NewFileScanner(cfg.SourceDir),
		parser:     parser.NewParser(decoder.New(matcher)).WithCache(cache.NewMemoryCache()),
		normalizer: normalizer,
	}, nil
}

// Parse runs the whole pipeline once for cfg.
func Parse(cfg model.RunConfig) (*Result, error) {
	a, err := New(cfg)
	if err != nil {
		return nil, err
	}
	return a.Run()
}

// Run scans the source directory, extracts and merges events and writes the
// report. Nothing is written unless every step before the report succeeds.
func (a *Analyzer) Run() (*Result, error) {
	startTime := time.Now()
	util.LogInfo("Starting parse run",
		util.F("source", a.config.SourceDir),
		util.F("archive", a.config.ArchiveDir),
		util.F("timezone", a.normalizer.Source().String()))

	// Phase 1: Scan files
	files, err := a.scanner.Scan()
	if err != nil {
		return nil, classifyFSError("scan source directory", err, true)
	}
	util.LogDebug(fmt.Sprintf("Phase 1 - found %d log files", len(files)))

	// Phase 2: Parse files in order
	events, stats, err := a.parser.ParseFiles(files)
	if err != nil {
		return nil, classifyFSError("read log file", err, false)
	}

	result := &Result{
		FilesScanned: stats.Files,
		FilesSkipped: stats.FilesSkipped,
		FilesCached:  stats.Cached,
		LinesRead:    stats.Lines,
		LinesMatched: stats.Qualifying,
		LinesSkipped: stats.Malformed,
		EventsParsed: stats.Events,
	}

	if len(events) == 0 {
		util.LogInfo(fmt.Sprintf("No qualifying events in %d files", len(files)))
		return result, fmt.Errorf("%w in %s", model.ErrNoEventsFound, a.config.SourceDir)
	}

	// Phase 3: Normalise, order and merge
	a.normalizer.NormalizeAll(events)
	merge.SortStable(events)
	merged := merge.Merge(events)
	util.LogDebug(fmt.Sprintf("Phase 3 - merged %d events into %d", len(events), len(merged)))

	// Phase 4: Write report
	path, err := report.Write(merged, a.config.ArchiveDir)
	if err != nil {
		if errors.Is(err, report.ErrNoEvents) {
			return result, fmt.Errorf("%w: %v", model.ErrNoEventsFound, err)
		}
		return result, classifyFSError("write report", err, false)
	}

	result.ReportPath = path
	result.EventsWritten = len(merged)
	result.Duration = time.Since(startTime)

	util.LogInfo("Parse run completed",
		util.F("report", path),
		util.F("files", result.FilesScanned),
		util.F("events", result.EventsWritten),
		util.F("duration", util.FormatDuration(result.Duration)))

	return result, nil
}
