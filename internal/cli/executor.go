package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/jedib0t/go-pretty/v6/text"
)

// Progress runs fn while a spinner animates next to message. The spinner is
// suppressed in quiet mode and when stderr is not a terminal, so piped and
// scripted invocations see only the command output.
func Progress(quiet bool, message string, fn func() error) error {
	if quiet || !IsTerminal() {
		return fn()
	}

	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
	s.Suffix = " " + message
	s.Start()
	err := fn()
	s.Stop()

	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", text.FgRed.Sprintf("✗ %s failed", message))
	}
	return err
}

// IsTerminal reports whether stderr is a character device (interactive terminal).
// Progress indicators and prompts are only useful on a real terminal.
func IsTerminal() bool {
	fi, err := os.Stderr.Stat()
	if err != nil {
		return false
	}
	return (fi.Mode() & os.ModeCharDevice) != 0
}

// PrintSuccess writes a green success line to stdout unless quiet mode is on.
func PrintSuccess(quiet bool, format string, args ...interface{}) {
	if quiet {
		return
	}
	fmt.Println(text.FgGreen.Sprintf("✓ "+format, args...))
}

// PrintWarning writes a yellow warning line to stderr.
func PrintWarning(format string, args ...interface{}) {
	fmt.Fprintln(os.Stderr, text.FgYellow.Sprintf("⚠ "+format, args...))
}
