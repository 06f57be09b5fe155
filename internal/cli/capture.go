package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/hirose30/screen-logger/internal/capture"
	"github.com/hirose30/screen-logger/internal/config"
	"github.com/hirose30/screen-logger/internal/daylog"
)

func newCaptureCmd(configPath *string) *cobra.Command {
	var once bool

	cmd := &cobra.Command{
		Use:   "capture",
		Short: "Run the screen capture loop",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}

			runner := capture.NewRunner(
				capture.Config{
					Interval:              time.Duration(cfg.Capture.IntervalSeconds) * time.Second,
					TempDir:               os.TempDir(),
					ExcludeApps:           cfg.Capture.ExcludeApps,
					ExcludeWindowPatterns: cfg.Capture.ExcludeWindowPatterns,
				},
				capture.OSAScriptWindows{},
				capture.ScreencaptureScreen{},
				capture.CommandOCR{Command: cfg.Capture.OCRCommand},
				daylog.New(cfg.LogDir),
			)

			if once {
				return runner.Once(cmd.Context())
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			if err := runner.Run(ctx); err != nil && err != context.Canceled {
				return err
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&once, "once", false, "capture a single observation and exit")
	return cmd
}
