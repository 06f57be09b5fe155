package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hirose30/screen-logger/internal/config"
	"github.com/hirose30/screen-logger/internal/history"
	"github.com/hirose30/screen-logger/internal/session"
)

func newHistoryCmd(configPath *string) *cobra.Command {
	var days int
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recently saved days",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			store, err := history.Open(cfg.StateDir)
			if err != nil {
				return err
			}
			defer store.Close()

			recent, err := store.Recent(days)
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd, recent)
			}
			if len(recent) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No saved days. Run `screen-logger analyze --save` first.")
				return nil
			}
			for _, day := range recent {
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %6s  active %5.1f%%  %4d captures  %s\n",
					day.Date, session.FormatDuration(day.TotalWorkMinutes),
					day.ActiveRate, day.CaptureCount, day.TopApp)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&days, "days", 7, "number of days to list")
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit JSON")
	return cmd
}
