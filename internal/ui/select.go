package ui

import (
	"io"
	"os"

	"golang.org/x/term"
)

// Select is responsible for determining the best UI to use given the
// application configuration and the terminal the process is attached to.
func Select(verbose, quiet bool, reportWriter io.Writer) UI {
	isStdoutATty := term.IsTerminal(int(os.Stdout.Fd()))
	isStderrATty := term.IsTerminal(int(os.Stderr.Fd()))
	notATerminal := !isStderrATty && !isStdoutATty

	switch {
	case verbose || quiet || notATerminal || !isStderrATty:
		return NewLoggerUI(reportWriter)
	default:
		return NewProgressUI(reportWriter)
	}
}
