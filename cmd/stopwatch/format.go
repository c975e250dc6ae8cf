package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/stopwatch/internal/stopwatch"
	swerrors "github.com/alexisbeaulieu97/stopwatch/pkg/errors"
)

func newFormatCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "format DURATION...",
		Short: "Print durations in the stopwatch display format",
		Long: `Print each argument as HH:MM:SS.mmm. Arguments are either a whole number
of milliseconds (3661001) or a Go duration string (1h1m1.001s).`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, arg := range args {
				d, err := parseDuration(arg)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, stopwatch.FormatTime(d))
			}
			return nil
		},
	}

	return cmd
}

func parseDuration(arg string) (time.Duration, error) {
	s := strings.TrimSpace(arg)

	var d time.Duration
	if ms, err := strconv.ParseInt(s, 10, 64); err == nil {
		d = time.Duration(ms) * time.Millisecond
	} else if parsed, perr := time.ParseDuration(s); perr == nil {
		d = parsed
	} else {
		return 0, swerrors.NewArgumentError(arg, perr)
	}

	if d < 0 {
		return 0, swerrors.NewArgumentError(arg, errors.New("duration must not be negative"))
	}
	return d, nil
}
