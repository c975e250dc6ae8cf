package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/stopwatch/internal/components"
	"github.com/alexisbeaulieu97/stopwatch/internal/config"
	"github.com/alexisbeaulieu97/stopwatch/internal/logger"
	"github.com/alexisbeaulieu97/stopwatch/internal/tui"
	swerrors "github.com/alexisbeaulieu97/stopwatch/pkg/errors"
)

// Swapped out in tests.
var (
	isTerminal = func() bool { return term.IsTerminal(int(os.Stdout.Fd())) }
	runProgram = func(ctx context.Context, m tea.Model) error {
		p := tea.NewProgram(m, tea.WithContext(ctx), tea.WithAltScreen(), tea.WithMouseCellMotion())
		_, err := p.Run()
		return err
	}
)

func runDisplay(ctx context.Context, cfg *config.Config) error {
	if ctx == nil {
		ctx = context.Background()
	}

	log, closeLog, err := logger.OpenFile(cfg.Log.File, logger.Options{
		Level:         cfg.Log.Level,
		HumanReadable: cfg.Log.Human,
	})
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer func() { _ = closeLog() }()

	if !isTerminal() {
		err := swerrors.NewTerminalError("stdout is not an interactive terminal", nil)
		log.Error(err, "display not started")
		return err
	}

	log.WithFields(map[string]any{"theme": cfg.Theme, "level": cfg.Log.Level}).Debug("settings resolved")

	log = log.WithFields(map[string]any{"component": "tui"})
	log.Info("display mounted")

	m := tui.NewModel(tui.Options{
		Theme:  components.ParseThemeMode(cfg.Theme),
		Logger: log,
	})
	if err := runProgram(ctx, m); err != nil {
		log.Error(err, "display failed")
		return fmt.Errorf("run display: %w", err)
	}

	log.Info("display closed")
	return nil
}
