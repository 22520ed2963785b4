package parser

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/penwyp/go-entparser/internal/core/cache"
	"github.com/penwyp/go-entparser/internal/core/decoder"
	"github.com/penwyp/go-entparser/internal/core/model"
	"github.com/penwyp/go-entparser/internal/util"
)

const byteOrderMark = "\ufeff"

// Parser reads chat log files into events.
type Parser struct {
	decoder *decoder.Decoder
	cache   *cache.MemoryCache
}

// ParseResult represents the result of parsing a single file.
type ParseResult struct {
	File       string
	Date       model.FileDate
	Events     []model.Event
	Lines      int
	Qualifying int
	Malformed  int
	Cached     bool
}

// Stats summarises a ParseFiles call.
type Stats struct {
	Files        int
	FilesSkipped int
	Lines        int
	Qualifying   int
	Malformed    int
	Events       int
	Cached       int
}

// NewParser creates a new Parser instance.
func NewParser(d *decoder.Decoder) *Parser {
	if d == nil {
		d = decoder.New(nil)
	}
	return &Parser{decoder: d}
}

// WithCache makes the parser reuse results for files that have not changed
// since they were last parsed.
func (p *Parser) WithCache(c *cache.MemoryCache) *Parser {
	p.cache = c
	return p
}

// ParseFile decodes every qualifying line of the file at path. Timestamps are
// local wall-clock times on the date taken from the file name.
func (p *Parser) ParseFile(path string) (*ParseResult, error) {
	date, err := decoder.ParseFileDate(filepath.Base(path))
	if err != nil {
		return nil, err
	}

	var fp cache.Fingerprint
	if p.cache != nil {
		info, err := os.Stat(path)
		if err != nil {
			return nil, err
		}
		fp = cache.FingerprintOf(info)
		if entry, ok := p.cache.Get(path, fp); ok {
			util.LogDebug(fmt.Sprintf("Using cached result for %s", path))
			return &ParseResult{
				File:       path,
				Date:       entry.Date,
				Events:     entry.Events,
				Lines:      entry.Lines,
				Qualifying: entry.Qualifying,
				Malformed:  entry.Malformed,
				Cached:     true,
			}, nil
		}
	}

	util.LogDebug(fmt.Sprintf("Start parsing file: %s (date %s)", path, date))

	file, err := os.Open(path)
	if err != nil {
		util.LogDebug(fmt.Sprintf("Failed to open file: %s - %v", path, err))
		return nil, err
	}
	defer file.Close()

	result := &ParseResult{File: path, Date: date}
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 10*1024*1024)

	for scanner.Scan() {
		result.Lines++
		line := scanner.Text()
		if result.Lines == 1 {
			line = strings.TrimPrefix(line, byteOrderMark)
		}
		if !decoder.Qualifies(line) {
			continue
		}
		result.Qualifying++

		event, err := p.decoder.Decode(line, date)
		if err != nil {
			if errors.Is(err, model.ErrMalformedLine) {
				result.Malformed++
				util.LogDebug(fmt.Sprintf("Skip malformed line %s:%d - %v", path, result.Lines, err))
			}
			continue
		}
		result.Events = append(result.Events, event)
	}

	if err := scanner.Err(); err != nil {
		util.LogDebug(fmt.Sprintf("Error scanning file: %s - %v", path, err))
		return nil, err
	}

	if p.cache != nil {
		p.cache.Set(path, &cache.FileEntry{
			Fingerprint: fp,
			Date:        result.Date,
			Events:      result.Events,
			Lines:       result.Lines,
			Qualifying:  result.Qualifying,
			Malformed:   result.Malformed,
		})
	}

	return result, nil
}

// ParseFiles parses files one at a time in the given order and concatenates
// their events. Files whose names carry no valid date are skipped; any other
// error stops the run.
func (p *Parser) ParseFiles(files []string) ([]model.Event, Stats, error) {
	start := time.Now()
	var events []model.Event
	stats := Stats{Files: len(files)}

	for _, f := range files {
		result, err := p.ParseFile(f)
		if err != nil {
			if errors.Is(err, model.ErrMalformedFileName) {
				stats.FilesSkipped++
				util.LogWarn(fmt.Sprintf("Skip file without a valid date: %v", err))
				continue
			}
			return nil, stats, fmt.Errorf("parse %s: %w", f, err)
		}

		stats.Lines += result.Lines
		stats.Qualifying += result.Qualifying
		stats.Malformed += result.Malformed
		if result.Cached {
			stats.Cached++
		}
		events = append(events, result.Events...)
	}
	stats.Events = len(events)

	if p.cache != nil {
		p.cache.Retain(files)
	}

	util.LogDebug(fmt.Sprintf("Parsed %d files in %v: %d lines, %d qualifying, %d events",
		len(files), time.Since(start), stats.Lines, stats.Qualifying, stats.Events))

	return events, stats, nil
}
