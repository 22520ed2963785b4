package scanner

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/penwyp/go-entparser/internal/util"
)

// FileScanner lists chat log files in a single directory.
type FileScanner struct {
	baseDir   string
	extension string
}

// NewFileScanner creates a new FileScanner instance
func NewFileScanner(baseDir string) *FileScanner {
	return &FileScanner{
		baseDir:   baseDir,
		extension: ".log",
	}
}

// Scan returns the .log files directly inside the base directory, sorted by
// name. Subdirectories are not descended into.
func (s *FileScanner) Scan() ([]string, error) {
	start := time.Now()

	util.LogDebug(fmt.Sprintf("Start scanning directory: %s", s.baseDir))

	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		return nil, err
	}

	var files []string
	skipped := 0
	for _, entry := range entries {
		if !s.isRegular(entry) {
			skipped++
			continue
		}
		if !strings.EqualFold(filepath.Ext(entry.Name()), s.extension) {
			skipped++
			continue
		}
		files = append(files, filepath.Join(s.baseDir, entry.Name()))
	}
	sort.Strings(files)

	util.LogDebug(fmt.Sprintf("File scan completed: duration %v, %d entries, found %d log files, skipped %d",
		time.Since(start), len(entries), len(files), skipped))

	return files, nil
}

// isRegular follows symlinks so linked log files are still picked up.
func (s *FileScanner) isRegular(entry os.DirEntry) bool {
	if entry.Type().IsRegular() {
		return true
	}
	if entry.Type()&os.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(filepath.Join(s.baseDir, entry.Name()))
	return err == nil && info.Mode().IsRegular()
}
