// Package timeutil provides time formatting utilities for Limpio.
//
// Pipeline operations finish in micro- to milliseconds, so durations are
// rendered with sub-millisecond precision for the status line and reports.
package timeutil

import (
	"fmt"
	"time"
)

// FormatClock formats a wall-clock time for the TUI status line.
// Format: "HH:MM:SS"
func FormatClock(t time.Time) string {
	return t.Format("15:04:05")
}

// FormatDuration formats a duration to a short human-readable string.
// Examples: "850µs", "12.4ms", "1.2s", "2m 15.3s"
func FormatDuration(d time.Duration) string {
	switch {
	case d < 0:
		return "0µs"
	case d < time.Millisecond:
		return fmt.Sprintf("%dµs", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%.1fms", float64(d.Microseconds())/1000.0)
	}

	seconds := d.Seconds()
	if seconds < 60 {
		return fmt.Sprintf("%.1fs", seconds)
	}
	minutes := int(seconds / 60)
	remaining := seconds - float64(minutes*60)
	return fmt.Sprintf("%dm %.1fs", minutes, remaining)
}
