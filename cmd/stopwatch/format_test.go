package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	swerrors "github.com/alexisbeaulieu97/stopwatch/pkg/errors"
)

func TestFormatCommandPrintsEachArgument(t *testing.T) {
	out, err := executeCommand("format", "0", "3661001", "1h1m1.001s")
	require.NoError(t, err)
	require.Equal(t, "00:00:00.000\n01:01:01.001\n01:01:01.001\n", out)
}

func TestFormatCommandRequiresArgument(t *testing.T) {
	_, err := executeCommand("format")
	require.Error(t, err)
}

func TestFormatCommandRejectsGarbage(t *testing.T) {
	_, err := executeCommand("format", "soon")
	var argErr *swerrors.ArgumentError
	require.ErrorAs(t, err, &argErr)
	require.Equal(t, "soon", argErr.Arg)
}

func TestParseDuration(t *testing.T) {
	t.Parallel()

	d, err := parseDuration(" 1500 ")
	require.NoError(t, err)
	require.Equal(t, 1500*time.Millisecond, d)

	d, err = parseDuration("2m")
	require.NoError(t, err)
	require.Equal(t, 2*time.Minute, d)

	_, err = parseDuration("-1s")
	var argErr *swerrors.ArgumentError
	require.ErrorAs(t, err, &argErr)
}
