package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/stopwatch/internal/components"
	"github.com/alexisbeaulieu97/stopwatch/internal/tui"
	swerrors "github.com/alexisbeaulieu97/stopwatch/pkg/errors"
)

func executeCommand(args ...string) (string, error) {
	root := newRootCmd()
	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

// stubDisplay replaces the terminal check and program runner for one test.
func stubDisplay(t *testing.T, tty bool) *tui.Model {
	t.Helper()
	originalTerminal := isTerminal
	originalRun := runProgram
	t.Cleanup(func() {
		isTerminal = originalTerminal
		runProgram = originalRun
	})

	var captured tui.Model
	isTerminal = func() bool { return tty }
	runProgram = func(ctx context.Context, m tea.Model) error {
		captured = m.(tui.Model)
		return nil
	}
	return &captured
}

func TestRootCommandRunsDisplay(t *testing.T) {
	captured := stubDisplay(t, true)

	_, err := executeCommand()
	require.NoError(t, err)
	require.True(t, captured.Mounted())
	require.Equal(t, components.ThemeDark, captured.Theme())
}

func TestRootCommandLightFlag(t *testing.T) {
	captured := stubDisplay(t, true)

	_, err := executeCommand("--light")
	require.NoError(t, err)
	require.Equal(t, components.ThemeLight, captured.Theme())
}

func TestRootCommandThemeFromConfig(t *testing.T) {
	captured := stubDisplay(t, true)

	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "stopwatch.yaml")
	logPath := filepath.Join(dir, "stopwatch.log")
	require.NoError(t, os.WriteFile(cfgPath, []byte("theme: light\nlog:\n  level: debug\n  file: "+logPath+"\n"), 0o600))

	_, err := executeCommand("--config", cfgPath)
	require.NoError(t, err)
	require.Equal(t, components.ThemeLight, captured.Theme())

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	require.Contains(t, string(data), "display mounted")
	require.Contains(t, string(data), "display closed")
}

func TestRootCommandDarkFlagOverridesConfig(t *testing.T) {
	captured := stubDisplay(t, true)

	cfgPath := filepath.Join(t.TempDir(), "stopwatch.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("theme: light\n"), 0o600))

	_, err := executeCommand("--config", cfgPath, "--dark")
	require.NoError(t, err)
	require.Equal(t, components.ThemeDark, captured.Theme())
}

func TestRootCommandRejectsBothThemes(t *testing.T) {
	stubDisplay(t, true)

	_, err := executeCommand("--light", "--dark")
	require.Error(t, err)
}

func TestRootCommandRequiresTerminal(t *testing.T) {
	stubDisplay(t, false)

	_, err := executeCommand()
	var termErr *swerrors.TerminalError
	require.ErrorAs(t, err, &termErr)
}

func TestRootCommandInvalidLogLevel(t *testing.T) {
	stubDisplay(t, true)

	_, err := executeCommand("--log-level", "chatty")
	var vErr *swerrors.ValidationError
	require.ErrorAs(t, err, &vErr)
	require.Equal(t, "log.level", vErr.Field)
}

func TestRootCommandMissingConfig(t *testing.T) {
	stubDisplay(t, true)

	_, err := executeCommand("--config", filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "load config")
}

func TestRootCommandWrapsProgramFailure(t *testing.T) {
	stubDisplay(t, true)
	runProgram = func(ctx context.Context, m tea.Model) error {
		return errors.New("tty lost")
	}

	_, err := executeCommand()
	require.ErrorContains(t, err, "run display: tty lost")
}

func TestRootCommandVerboseLogsSettings(t *testing.T) {
	stubDisplay(t, true)
	logPath := filepath.Join(t.TempDir(), "stopwatch.log")

	_, err := executeCommand("--light", "--verbose", "--log-file", logPath)
	require.NoError(t, err)

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	require.Contains(t, string(data), `"message":"settings resolved"`)
	require.Contains(t, string(data), `"theme":"light"`)
}
