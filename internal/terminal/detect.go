// Package terminal provides terminal detection utilities.
package terminal

import (
	"os"

	"golang.org/x/term"
)

// IsInteractive reports whether stdin and stdout are both interactive terminals.
// Prompting surfaces (init overwrite confirm, setup wizard) gate on this so
// automated runs never block on input.
func IsInteractive() bool {
	return IsTerminalFile(os.Stdin) && IsTerminalFile(os.Stdout)
}

// IsTerminalFile reports whether f is attached to a terminal.
func IsTerminalFile(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
