package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/hirose30/screen-logger/internal/capture"
	"github.com/hirose30/screen-logger/internal/config"
	"github.com/hirose30/screen-logger/internal/daylog"
)

func newStatusCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show whether the capture daemon is running and today's log size",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}

			daemons, err := capture.FindDaemons("screen-logger")
			if err != nil {
				return err
			}
			if len(daemons) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "capture daemon: not running")
			}
			for _, d := range daemons {
				fmt.Fprintf(cmd.OutOrStdout(), "capture daemon: pid %d, cpu %.1f%%, mem %.1fMB, up %dm\n",
					d.PID, d.CPUPercent, d.MemoryMB, d.UptimeMinutes)
			}

			today := time.Now().Format("2006-01-02")
			observations, err := daylog.New(cfg.LogDir).LoadDay(today)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "today: %d observations in %s\n",
				len(observations), daylog.New(cfg.LogDir).Path(today))
			return nil
		},
	}
}
