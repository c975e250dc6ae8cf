package main

import (
	"fmt"

	"github.com/alexisbeaulieu97/stopwatch/internal/config"
)

// resolveSettings loads the config file and applies command-line overrides.
func resolveSettings(flags *rootFlags) (*config.Config, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	switch {
	case flags.light:
		cfg.Theme = "light"
	case flags.dark:
		cfg.Theme = "dark"
	}
	if flags.logFile != "" {
		cfg.Log.File = flags.logFile
	}
	if flags.logLevel != "" {
		cfg.Log.Level = flags.logLevel
	}
	if flags.verbose {
		cfg.Log.Level = "debug"
	}

	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
