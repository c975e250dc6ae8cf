package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type logEntry map[string]any

func TestLoggerInfoWithFields(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", HumanReadable: false, Writer: buf})
	require.NoError(t, err)

	log = log.WithFields(map[string]any{"component": "tui", "theme": "dark"})
	log.Info("display mounted")

	var entry logEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "display mounted", entry["message"])
	require.Equal(t, "tui", entry["component"])
	require.Equal(t, "dark", entry["theme"])
	require.Equal(t, "info", entry["level"])
}

func TestLoggerDebugRespectsLevel(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", HumanReadable: false, Writer: buf})
	require.NoError(t, err)

	log.Debug("this should not appear")
	require.Equal(t, "", strings.TrimSpace(buf.String()))
}

func TestLoggerErrorIncludesContext(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "debug", HumanReadable: false, Writer: buf})
	require.NoError(t, err)

	log = log.WithFields(map[string]any{"component": "config"})
	log.Error(errors.New("boom"), "failed")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry logEntry
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	require.Equal(t, "failed", entry["message"])
	require.Equal(t, "config", entry["component"])
	require.Equal(t, "boom", entry["error"])
}

func TestLoggerEventWritesDebugFields(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "debug", Writer: buf})
	require.NoError(t, err)

	log.Event("stopwatch event", map[string]any{"kind": "lap", "laps": 3})

	var entry logEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "debug", entry["level"])
	require.Equal(t, "lap", entry["kind"])
	require.EqualValues(t, 3, entry["laps"])
}

func TestLoggerRejectsUnknownLevel(t *testing.T) {
	t.Parallel()

	_, err := New(Options{Level: "chatty", Writer: &bytes.Buffer{}})
	require.Error(t, err)
}

func TestOpenFileAppendsToPath(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "stopwatch.log")
	log, closeFn, err := OpenFile(path, Options{Level: "info"})
	require.NoError(t, err)

	log.Info("mounted")
	require.NoError(t, closeFn())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "mounted")
}

func TestOpenFileEmptyPathDiscards(t *testing.T) {
	t.Parallel()

	log, closeFn, err := OpenFile("", Options{Level: "debug"})
	require.NoError(t, err)
	require.NotNil(t, log)
	log.Info("nowhere")
	require.NoError(t, closeFn())
}

func TestNilAndNopLoggersAreSafe(t *testing.T) {
	t.Parallel()

	var nilLog *Logger
	require.NotPanics(t, func() {
		nilLog.Info("x")
		nilLog.Event("x", nil)
		nilLog.Error(errors.New("x"), "x")
		require.Nil(t, nilLog.WithFields(map[string]any{"a": 1}))
	})
	require.NotPanics(t, func() { Nop().Warn("x") })
}
