package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hirose30/screen-logger/internal/analyze"
	"github.com/hirose30/screen-logger/internal/report"
)

func newReportCmd(configPath *string) *cobra.Command {
	var markdown bool

	cmd := &cobra.Command{
		Use:   "report [date]",
		Short: "Render the daily report for the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := resolveDate(args)
			if err != nil {
				return err
			}
			_, observations, extractor, err := loadDay(*configPath, date)
			if err != nil {
				return err
			}

			result := analyze.Run(date, observations, extractor)
			if markdown {
				_, err := fmt.Fprint(cmd.OutOrStdout(), report.Markdown(result))
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), report.Terminal(result))
			return err
		},
	}

	cmd.Flags().BoolVar(&markdown, "markdown", false, "emit markdown instead of the styled view")
	return cmd
}
