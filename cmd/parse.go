package cmd

import (
	"github.com/marcus/et/internal/epoch"
	"github.com/marcus/et/internal/output"
	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse TIMESTAMP",
	Short: "Convert an ISO-8601 timestamp to epoch seconds",
	Long: `Converts an ISO-8601 timestamp to Unix epoch seconds.

The timestamp must carry a timezone designator (Z or a numeric
offset); explicit offsets are converted to UTC.`,
	Example: `  et parse 2026-01-05T12:00:00Z
  et parse 2026-01-05T14:00:00+02:00`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := epoch.ParseISO(args[0])
		if err != nil {
			return err
		}
		output.Result("%d", v)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)
}
