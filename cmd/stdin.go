package cmd

import (
	"io"
	"os"

	"github.com/marcus/et/internal/epoch"
	"github.com/marcus/et/internal/input"
	"github.com/marcus/et/internal/output"
)

// Both are swapped out in tests to simulate piped input.
var (
	stdin           io.Reader = os.Stdin
	stdinIsTerminal           = input.StdinIsTerminal
)

// processStdin applies d (when non-nil) to every epoch piped on
// stdin, printing one result per line, and returns the number of
// lines processed. Zero means there was no piped data and the caller
// should fall back to the current time.
func processStdin(d *epoch.Duration) (int, error) {
	if stdinIsTerminal() {
		return 0, nil
	}
	return input.ForEachLine(stdin, func(line string) error {
		v, err := epoch.ParseEpoch(line)
		if err != nil {
			return err
		}
		if d != nil {
			if v, err = epoch.Apply(v, *d); err != nil {
				return err
			}
		}
		output.Result("%d", v)
		return nil
	})
}
