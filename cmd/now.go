package cmd

import (
	"fmt"

	"github.com/marcus/et/internal/epoch"
	"github.com/marcus/et/internal/output"
	"github.com/spf13/cobra"
)

var nowCmd = &cobra.Command{
	Use:   "now [DURATION]",
	Short: "Print the current epoch timestamp",
	Long:  `Prints the current epoch, optionally shifted by a duration (e.g. +3h, -7d, +1M).`,
	// Durations like -7d would otherwise be parsed as flags
	DisableFlagParsing: true,
	SilenceUsage:       true,
	SilenceErrors:      true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 && (args[0] == "-h" || args[0] == "--help") {
			return cmd.Help()
		}
		if len(args) > 1 {
			return fmt.Errorf("too many arguments: want at most one duration")
		}
		result := nowFn()
		if len(args) == 1 {
			d, err := epoch.ParseDuration(args[0])
			if err != nil {
				return err
			}
			if result, err = epoch.Apply(result, d); err != nil {
				return err
			}
		}
		output.Result("%d", result)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(nowCmd)
}
