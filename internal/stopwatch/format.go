package stopwatch

import (
	"fmt"
	"time"
)

// FormatTime renders d as HH:MM:SS.mmm. Every unit is truncated, hours are
// unbounded and negative durations render as zero.
func FormatTime(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	ms := d.Milliseconds()

	hours := ms / 3_600_000
	minutes := ms % 3_600_000 / 60_000
	seconds := ms % 60_000 / 1000
	millis := ms % 1000

	return fmt.Sprintf("%02d:%02d:%02d.%03d", hours, minutes, seconds, millis)
}
