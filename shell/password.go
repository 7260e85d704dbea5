package shell

import (
	"io"
	"os"

	"golang.org/x/term"
)

// TerminalPassword is a ReadPassword implementation for sessions bound to a
// terminal: it disables echo while the user types. It reports false when r
// is not a terminal, so the session falls back to plain text input.
func TerminalPassword(r io.Reader) (string, bool) {
	f, ok := r.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return "", false
	}
	b, err := term.ReadPassword(int(f.Fd()))
	if err != nil {
		return "", false
	}
	return string(b), true
}
