package util

import (
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/term"
)

// Terminal control sequences
const (
	ColorReset  = "\033[0m"
	ColorCyan   = "\033[36m"
	ColorGreen  = "\033[32m"
	ColorYellow = "\033[33m"
	ColorRed    = "\033[31m"
	ColorBold   = "\033[1m"
)

const defaultTerminalWidth = 80

// GetDisplayWidth calculates the display width of a string
func GetDisplayWidth(text string) int {
	return runewidth.StringWidth(text)
}

// PadString pads s with spaces to width display columns.
func PadString(s string, width int, leftAlign bool) string {
	actual := GetDisplayWidth(s)
	if actual >= width {
		return s
	}
	padding := strings.Repeat(" ", width-actual)
	if leftAlign {
		return s + padding
	}
	return padding + s
}

// TerminalWidth returns the width of stdout, or 80 when it is not a terminal.
func TerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return defaultTerminalWidth
	}
	return width
}

// Columns lays cells out row by row in as many equal-width columns as fit in
// width. Every line is right-trimmed.
func Columns(cells []string, width int) []string {
	if len(cells) == 0 {
		return nil
	}

	cellWidth := 0
	for _, c := range cells {
		if w := GetDisplayWidth(c); w > cellWidth {
			cellWidth = w
		}
	}
	const gap = 2
	perRow := (width + gap) / (cellWidth + gap)
	if perRow < 1 {
		perRow = 1
	}

	lines := make([]string, 0, (len(cells)+perRow-1)/perRow)
	for i := 0; i < len(cells); i += perRow {
		end := i + perRow
		if end > len(cells) {
			end = len(cells)
		}
		var b strings.Builder
		for j, c := range cells[i:end] {
			if j > 0 {
				b.WriteString(strings.Repeat(" ", gap))
			}
			b.WriteString(PadString(c, cellWidth, true))
		}
		lines = append(lines, strings.TrimRight(b.String(), " "))
	}
	return lines
}

// FormatHeaderTitle formats main header titles (Cyan + Bold)
func FormatHeaderTitle(title string) string {
	return fmt.Sprintf("%s%s%s%s", ColorBold, ColorCyan, title, ColorReset)
}

// FormatSuccess formats a success message (Green)
func FormatSuccess(msg string) string {
	return fmt.Sprintf("%s%s%s", ColorGreen, msg, ColorReset)
}

// FormatWarning formats a warning message (Yellow)
func FormatWarning(msg string) string {
	return fmt.Sprintf("%s%s%s", ColorYellow, msg, ColorReset)
}
