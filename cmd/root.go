package cmd

import (
	"fmt"
	"os"

	"github.com/marcus/et/internal/epoch"
	"github.com/marcus/et/internal/output"
	"github.com/spf13/cobra"
)

var version string

// SetVersion sets the version string reported by --version.
func SetVersion(v string) {
	version = v
}

// nowFn is swapped out in tests to pin the clock.
var nowFn = epoch.Now

var rootCmd = &cobra.Command{
	Use:   "et [EPOCH|DURATION|now] [DURATION]",
	Short: "Print and manipulate Unix epoch timestamps",
	Long: `et - print and manipulate Unix epoch timestamps.

DURATION UNITS
  s    seconds
  m    minutes (60s)
  h    hours (3600s)
  d    days (86400s)
  w    weeks (604800s)
  M    months (calendar)
  Y    years (calendar)

Calendar units follow variable month lengths and leap years. When the
day does not exist in the target month it is clamped to the last valid
day (Jan 31 + 1M = Feb 28/29).`,
	Example: `  et                  Print current epoch
  et -7d              Subtract 7 days from now
  et +3h              Add 3 hours to now
  et +1M              Add 1 calendar month
  et -1Y              Subtract 1 calendar year
  et 1704912345 +1h   Add 1 hour to a given epoch
  et parse 2026-01-05T12:00:00Z
  et format 1704912345
  echo 1704912345 | et -1d`,
	// Duration arguments start with '-', so the root command takes
	// its arguments raw and routes help/version itself.
	DisableFlagParsing: true,
	SilenceUsage:       true,
	SilenceErrors:      true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			switch args[0] {
			case "-h", "--help":
				return cmd.Help()
			case "-v", "--version":
				fmt.Printf("et %s\n", version)
				return nil
			}
		}
		return runDefault(args)
	},
}

// runDefault handles the bare-argument forms: no args (stdin filter or
// current epoch), a single epoch/duration/now token, or an epoch
// followed by a duration.
func runDefault(args []string) error {
	switch len(args) {
	case 0:
		// Piped epochs echo straight through; an empty or interactive
		// stdin falls back to the current epoch.
		n, err := processStdin(nil)
		if err != nil {
			return err
		}
		if n == 0 {
			output.Result("%d", nowFn())
		}
		return nil

	case 1:
		arg := args[0]
		if arg == "now" {
			output.Result("%d", nowFn())
			return nil
		}
		if epoch.IsDuration(arg) {
			d, err := epoch.ParseDuration(arg)
			if err != nil {
				return err
			}
			n, err := processStdin(&d)
			if err != nil {
				return err
			}
			if n == 0 {
				result, err := epoch.Apply(nowFn(), d)
				if err != nil {
					return err
				}
				output.Result("%d", result)
			}
			return nil
		}
		// A bare epoch is validated and echoed
		v, err := epoch.ParseEpoch(arg)
		if err != nil {
			return err
		}
		output.Result("%d", v)
		return nil

	case 2:
		var base int64
		if args[0] == "now" {
			base = nowFn()
		} else {
			v, err := epoch.ParseEpoch(args[0])
			if err != nil {
				return err
			}
			base = v
		}
		d, err := epoch.ParseDuration(args[1])
		if err != nil {
			return err
		}
		result, err := epoch.Apply(base, d)
		if err != nil {
			return err
		}
		output.Result("%d", result)
		return nil

	default:
		return fmt.Errorf("too many arguments: want at most an epoch and a duration")
	}
}

// Execute runs the root command, mapping any error to a styled
// message and exit status 1.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		output.Error("%v", err)
		os.Exit(1)
	}
}
