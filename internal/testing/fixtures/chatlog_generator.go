package fixtures

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// FileNameLayout produces names whose date sits at byte offsets 8-17.
const FileNameLayout = "chatlog-2006-01-02.log"

// ChatLogGenerator writes per-day chat log files for tests.
type ChatLogGenerator struct {
	baseDir string
}

// NewChatLogGenerator creates a generator writing into baseDir.
func NewChatLogGenerator(baseDir string) *ChatLogGenerator {
	return &ChatLogGenerator{baseDir: baseDir}
}

// Dir returns the directory files are written to.
func (g *ChatLogGenerator) Dir() string {
	return g.baseDir
}

// FileName returns the log file name for day.
func FileName(day time.Time) string {
	return day.Format(FileNameLayout)
}

// WriteDay writes lines to the log file for day and returns its path.
func (g *ChatLogGenerator) WriteDay(day time.Time, lines ...string) (string, error) {
	return g.WriteFile(FileName(day), lines...)
}

// WriteFile writes lines to name inside the base directory.
func (g *ChatLogGenerator) WriteFile(name string, lines ...string) (string, error) {
	if err := os.MkdirAll(g.baseDir, 0755); err != nil {
		return "", err
	}
	path := filepath.Join(g.baseDir, name)
	content := strings.Join(lines, "\n")
	if len(lines) > 0 {
		content += "\n"
	}
	return path, os.WriteFile(path, []byte(content), 0644)
}

// CheckLine builds a qualifying clan-chat line reporting count of 5 pruned at location.
func CheckLine(clock, speaker, location string, count int) string {
	return fmt.Sprintf("%s [Clan] %s: %s %d/5", clock, speaker, location, count)
}

// ChatLine builds an ordinary chat line.
func ChatLine(clock, speaker, text string) string {
	return fmt.Sprintf("%s [Clan] %s: %s", clock, speaker, text)
}

// Date is shorthand for midnight UTC on the given day.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
