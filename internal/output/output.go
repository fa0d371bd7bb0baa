// Package output provides styled terminal output helpers using
// lipgloss.
package output

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
)

var (
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
)

// Error prints an error message to stderr.
func Error(format string, args ...interface{}) {
	fmt.Fprintln(os.Stderr, errorStyle.Render("error: "+fmt.Sprintf(format, args...)))
}

// Warning prints a warning message to stderr.
func Warning(format string, args ...interface{}) {
	fmt.Fprintln(os.Stderr, warningStyle.Render("warning: "+fmt.Sprintf(format, args...)))
}

// Result prints a computed value to stdout, unstyled so the output
// stays pipeable.
func Result(format string, args ...interface{}) {
	fmt.Printf(format+"\n", args...)
}
