package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hirose30/screen-logger/internal/analyze"
	"github.com/hirose30/screen-logger/internal/history"
	"github.com/hirose30/screen-logger/internal/report"
)

func newAnalyzeCmd(configPath *string) *cobra.Command {
	var format string
	var save bool

	cmd := &cobra.Command{
		Use:   "analyze [date]",
		Short: "Analyze one day's log into sessions and stats",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := resolveDate(args)
			if err != nil {
				return err
			}
			cfg, observations, extractor, err := loadDay(*configPath, date)
			if err != nil {
				return err
			}

			result := analyze.Run(date, observations, extractor)

			if save && !result.NoData() {
				store, err := history.Open(cfg.StateDir)
				if err != nil {
					return err
				}
				defer store.Close()
				if err := store.Save(result); err != nil {
					return err
				}
			}

			switch format {
			case "json":
				return writeJSON(cmd, result)
			case "summary":
				return writeJSON(cmd, analyze.Summarize(result))
			case "markdown":
				_, err := fmt.Fprint(cmd.OutOrStdout(), report.Markdown(result))
				return err
			default:
				return fmt.Errorf("unknown format %q: expected json, summary, or markdown", format)
			}
		},
	}

	cmd.Flags().StringVar(&format, "format", "json", "output format: json, summary, or markdown")
	cmd.Flags().BoolVar(&save, "save", false, "save the result to the history database")
	return cmd
}

func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
