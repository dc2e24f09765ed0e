package style

import (
	"fmt"

	"golang.org/x/term"
)

// Mode controls when colored output is used.
type Mode string

const (
	Auto   Mode = "auto"   // color when the output is a terminal
	Always Mode = "always" // always use color
	Never  Mode = "never"  // never use color
)

// ParseMode validates a color mode name. The empty string means Auto.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case "", Auto:
		return Auto, nil
	case Always, Never:
		return Mode(s), nil
	}
	return "", fmt.Errorf("invalid color mode %q (want auto, always or never)", s)
}

// ForMode picks the Style for mode. In Auto mode fd is checked with
// term.IsTerminal.
func ForMode(mode Mode, fd uintptr) Style {
	switch mode {
	case Always:
		return ANSI{}
	case Never:
		return Plain{}
	}
	if term.IsTerminal(int(fd)) {
		return ANSI{}
	}
	return Plain{}
}
