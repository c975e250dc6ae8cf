package stopwatch

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLapRowsEmpty(t *testing.T) {
	t.Parallel()

	require.Empty(t, LapRows(nil, 5*time.Second))
	require.Empty(t, CompletedLaps(nil, 5*time.Second))
}

func TestLapRowsNewestFirst(t *testing.T) {
	t.Parallel()

	boundaries := []time.Duration{0, 2 * time.Second, 5 * time.Second}
	rows := LapRows(boundaries, 9*time.Second)

	require.Equal(t, []LapRow{
		{Number: 3, Duration: 4 * time.Second},
		{Number: 2, Duration: 3 * time.Second},
		{Number: 1, Duration: 2 * time.Second},
	}, rows)
	require.Equal(t, "Lap 3", rows[0].Label())
}

func TestCompletedLapsDropsInProgressSegment(t *testing.T) {
	t.Parallel()

	boundaries := []time.Duration{0, 2 * time.Second, 5 * time.Second}
	rows := CompletedLaps(boundaries, 9*time.Second)

	require.Len(t, rows, 2)
	require.Equal(t, 2, rows[0].Number)
	require.Equal(t, 1, rows[1].Number)
}

func TestLapRowsSingleBoundaryIsCurrentLap(t *testing.T) {
	t.Parallel()

	rows := LapRows([]time.Duration{0}, 1500*time.Millisecond)
	require.Equal(t, []LapRow{{Number: 1, Duration: 1500 * time.Millisecond}}, rows)
}
