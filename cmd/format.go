package cmd

import (
	"github.com/marcus/et/internal/epoch"
	"github.com/marcus/et/internal/output"
	"github.com/spf13/cobra"
)

var formatCmd = &cobra.Command{
	Use:   "format EPOCH",
	Short: "Convert epoch seconds to an ISO-8601 timestamp",
	Long:  `Converts a Unix epoch timestamp to ISO-8601 UTC (YYYY-MM-DDTHH:MM:SSZ).`,
	Example: `  et format 1704912345
  et format 0`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := epoch.ParseEpoch(args[0])
		if err != nil {
			return err
		}
		iso, err := epoch.FormatISO(v)
		if err != nil {
			return err
		}
		output.Result("%s", iso)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(formatCmd)
}
