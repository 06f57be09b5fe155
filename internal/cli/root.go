// Package cli wires the cobra command tree for the screen-logger binary.
package cli

import (
	"fmt"
	"regexp"
	"time"

	"github.com/spf13/cobra"

	"github.com/hirose30/screen-logger/internal/config"
	"github.com/hirose30/screen-logger/internal/daylog"
	"github.com/hirose30/screen-logger/internal/workctx"
)

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:           "screen-logger",
		Short:         "Log screen activity and report what you worked on",
		Long:          "screen-logger samples the frontmost window and screen text on an interval, then classifies the log into work sessions, idle periods, and daily reports.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file path")

	rootCmd.AddCommand(
		newVersionCmd(),
		newCaptureCmd(&configPath),
		newAnalyzeCmd(&configPath),
		newReportCmd(&configPath),
		newHistoryCmd(&configPath),
		newStatusCmd(&configPath),
	)

	return rootCmd
}

var dateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// resolveDate validates the optional date argument, defaulting to today
func resolveDate(args []string) (string, error) {
	if len(args) == 0 {
		return time.Now().Format("2006-01-02"), nil
	}
	if !dateRe.MatchString(args[0]) {
		return "", fmt.Errorf("invalid date %q: expected YYYY-MM-DD", args[0])
	}
	return args[0], nil
}

// loadDay loads config, the day's observations, and the configured extractor
func loadDay(configPath, date string) (*config.Config, []daylog.Observation, *workctx.Extractor, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, nil, err
	}
	observations, err := daylog.New(cfg.LogDir).LoadDay(date)
	if err != nil {
		return nil, nil, nil, err
	}
	return cfg, observations, workctx.NewExtractor(cfg.Analyze.KnownProjects), nil
}
