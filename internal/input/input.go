// Package input provides helpers for reading newline-delimited values
// from stdin.
package input

import (
	"bufio"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// StdinIsTerminal reports whether stdin is attached to a terminal,
// i.e. nothing has been piped in.
func StdinIsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// ForEachLine calls fn for every trimmed, non-blank line of r and
// returns the number of lines processed. The first error from fn
// stops the scan.
func ForEachLine(r io.Reader, fn func(string) error) (int, error) {
	scanner := bufio.NewScanner(r)
	count := 0
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		count++
		if err := fn(line); err != nil {
			return count, err
		}
	}
	return count, scanner.Err()
}
