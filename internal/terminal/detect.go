// Package terminal provides terminal detection utilities.
package terminal

import (
	"io"
	"os"

	"golang.org/x/term"
)

// IsTerminalWriter reports whether w is a file attached to a terminal.
// Buffers and pipes report false.
func IsTerminalWriter(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok || f == nil {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
