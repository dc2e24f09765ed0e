// Package style abstracts terminal styling so report rendering can be
// tested on visible text.
package style

import (
	"github.com/charmbracelet/x/ansi"
	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
)

// Attr is a single text attribute: an emphasis or a foreground color.
type Attr int

// Attributes understood by every Style.
const (
	Reset Attr = iota
	Bold
	Dim
	Underline
	Red
	Yellow
	Green
	Cyan
)

// Style paints text with attributes.
type Style interface {
	Paint(text string, attrs ...Attr) string
}

// ColorNamed maps a color name to its Attr.
func ColorNamed(name string) (Attr, bool) {
	switch name {
	case "red":
		return Red, true
	case "yellow":
		return Yellow, true
	case "green":
		return Green, true
	case "cyan":
		return Cyan, true
	}
	return Reset, false
}

var colorAttrs = map[Attr]color.Attribute{
	Reset:     color.Reset,
	Bold:      color.Bold,
	Dim:       color.Faint,
	Underline: color.Underline,
	Red:       color.FgRed,
	Yellow:    color.FgYellow,
	Green:     color.FgGreen,
	Cyan:      color.FgCyan,
}

// ANSI paints text with escape sequences. Color is forced on regardless of
// whether stdout is a terminal; choose Plain to disable it.
type ANSI struct{}

// Paint wraps text in the escape sequences for attrs. Empty text stays empty.
func (ANSI) Paint(text string, attrs ...Attr) string {
	if text == "" || len(attrs) == 0 {
		return text
	}
	ca := make([]color.Attribute, 0, len(attrs))
	for _, a := range attrs {
		if v, ok := colorAttrs[a]; ok {
			ca = append(ca, v)
		}
	}
	c := color.New(ca...)
	c.EnableColor()
	return c.Sprint(text)
}

// Plain ignores all attributes.
type Plain struct{}

// Paint returns text unchanged.
func (Plain) Paint(text string, _ ...Attr) string {
	return text
}

// Strip removes ANSI escape sequences from s.
func Strip(s string) string {
	return ansi.Strip(s)
}

// Width returns the number of terminal cells s occupies once escape
// sequences are removed.
func Width(s string) int {
	return runewidth.StringWidth(ansi.Strip(s))
}

var (
	_ Style = ANSI{}
	_ Style = Plain{}
)
