package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	configPath string
	light      bool
	dark       bool
	logFile    string
	logLevel   string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "stopwatch",
		Short:         "A terminal stopwatch with laps and a light/dark theme",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := resolveSettings(flags)
			if err != nil {
				return err
			}
			return runDisplay(cmd.Context(), settings)
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to a YAML configuration file")
	cmd.Flags().BoolVar(&flags.light, "light", false, "Start in light mode")
	cmd.Flags().BoolVar(&flags.dark, "dark", false, "Start in dark mode")
	cmd.Flags().StringVar(&flags.logFile, "log-file", "", "Append diagnostic logs to this file")
	cmd.Flags().StringVar(&flags.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	cmd.Flags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable debug logging")
	cmd.MarkFlagsMutuallyExclusive("light", "dark")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newFormatCmd())

	return cmd
}
