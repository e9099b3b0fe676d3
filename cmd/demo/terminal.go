package main

import (
	"os"

	"golang.org/x/term"
)

// rawModeState holds the terminal state MakeRaw replaced, so it can be
// restored on exit.
//
// Grounded on other_examples/majorcontext-moat's internal/term/raw.go:
// germtb-goli's own term_linux.go hand-rolls this with raw ioctl/termios
// syscalls (Linux-only, no Darwin build file carried into this repo);
// golang.org/x/term wraps both platforms' syscalls behind the same four
// calls below, so it replaces term_linux.go/term_darwin.go wholesale
// instead of porting them.
type rawModeState struct {
	fd  int
	old *term.State
}

// enableRawMode puts f into raw mode (no echo, no line buffering, no
// signal generation) so every keystroke reaches the read loop
// immediately and unmodified.
func enableRawMode(f *os.File) (*rawModeState, error) {
	fd := int(f.Fd())
	old, err := term.MakeRaw(fd)
	if err != nil {
		return nil, err
	}
	return &rawModeState{fd: fd, old: old}, nil
}

// restoreTerminal undoes enableRawMode. A nil state (raw mode was never
// entered, e.g. stdin isn't a terminal) is a no-op.
func restoreTerminal(state *rawModeState) error {
	if state == nil {
		return nil
	}
	return term.Restore(state.fd, state.old)
}

// isTerminal reports whether f is an interactive terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// terminalSize returns f's current dimensions in cells, falling back to
// 80x24 if f isn't a terminal or the ioctl fails.
func terminalSize(f *os.File) (width, height int) {
	if !isTerminal(f) {
		return 80, 24
	}
	w, h, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 80, 24
	}
	return w, h
}
