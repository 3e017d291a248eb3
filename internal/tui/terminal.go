package tui

import (
	"os"

	"golang.org/x/term"
)

// OutputMode selects how results are rendered.
type OutputMode int

const (
	// OutputModePlain writes a plain text table (pipes, files, dumb terminals).
	OutputModePlain OutputMode = iota
	// OutputModeInteractive runs the full-screen browser.
	OutputModeInteractive
)

const (
	defaultWidth  = 120
	defaultHeight = 24
)

// DetectOutputMode returns OutputModeInteractive when stdin and stdout are
// terminals and plain output was not forced.
func DetectOutputMode(forcePlain bool) OutputMode {
	if forcePlain || os.Getenv("TERM") == "dumb" {
		return OutputModePlain
	}
	if !term.IsTerminal(int(os.Stdout.Fd())) || !term.IsTerminal(int(os.Stdin.Fd())) {
		return OutputModePlain
	}
	return OutputModeInteractive
}

// TerminalWidth returns the width of stdout, or a default when it is not a terminal.
func TerminalWidth() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return defaultWidth
	}
	return w
}
