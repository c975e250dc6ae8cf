package stopwatch

import (
	"strconv"
	"time"
)

// LapRow is one displayed lap: its 1-based ordinal and duration.
type LapRow struct {
	Number   int
	Duration time.Duration
}

// Label is the row caption, e.g. "Lap 3".
func (r LapRow) Label() string {
	return "Lap " + strconv.Itoa(r.Number)
}

// LapRows appends current to the boundaries, takes consecutive differences and
// returns them newest first. The newest row is the lap still in progress.
func LapRows(boundaries []time.Duration, current time.Duration) []LapRow {
	if len(boundaries) == 0 {
		return nil
	}

	total := len(boundaries)
	rows := make([]LapRow, 0, total)
	prev := boundaries[total-1]
	rows = append(rows, LapRow{Number: total, Duration: current - prev})
	for i := total - 1; i > 0; i-- {
		rows = append(rows, LapRow{Number: i, Duration: boundaries[i] - boundaries[i-1]})
	}
	return rows
}

// CompletedLaps is LapRows without the in-progress segment.
func CompletedLaps(boundaries []time.Duration, current time.Duration) []LapRow {
	rows := LapRows(boundaries, current)
	if len(rows) == 0 {
		return nil
	}
	return rows[1:]
}

