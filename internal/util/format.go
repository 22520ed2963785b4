package util

import (
	"fmt"
	"time"
)

// FormatDuration renders short durations for run summaries.
func FormatDuration(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return fmt.Sprintf("%dµs", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	case d < time.Minute:
		return fmt.Sprintf("%.1fs", d.Seconds())
	}
	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%dm %ds", minutes, seconds)
}

// FormatOffset renders a UTC offset as "UTC", "UTC+05:30" or "UTC-08:00".
func FormatOffset(offset time.Duration) string {
	if offset == 0 {
		return "UTC"
	}
	sign := '+'
	if offset < 0 {
		sign = '-'
		offset = -offset
	}
	hours := int(offset / time.Hour)
	minutes := int(offset%time.Hour) / int(time.Minute)
	return fmt.Sprintf("UTC%c%02d:%02d", sign, hours, minutes)
}
