package logging

import (
	"io"
	"os"

	"golang.org/x/term"
)

type fdWriter interface {
	Fd() uintptr
}

// IsTTY reports whether v is a terminal. It accepts *os.File and any
// wrapper exposing Fd(); everything else is not a terminal.
func IsTTY(v any) bool {
	if f, ok := v.(fdWriter); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}

// IsInteractive reports whether both in and out are terminals, i.e. a user
// can answer a prompt.
func IsInteractive(in io.Reader, out io.Writer) bool {
	return IsTTY(in) && IsTTY(out)
}

// SupportsColor reports whether ANSI colors should be written to w.
// NO_COLOR (any value) and TERM=dumb disable color; otherwise w must be a TTY.
func SupportsColor(w io.Writer) bool {
	return supportsColor(IsTTY(w))
}

func supportsColor(isTTY bool) bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return isTTY
}
