package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"golang.org/x/term"
)

type colorMode int

const (
	colorAuto colorMode = iota
	colorAlways
	colorNever
)

func parseColorMode(s string) (colorMode, error) {
	switch strings.ToLower(s) {
	case "", "auto":
		return colorAuto, nil
	case "always":
		return colorAlways, nil
	case "never":
		return colorNever, nil
	default:
		return 0, fmt.Errorf("invalid color mode %q (want auto, always or never)", s)
	}
}

// enabled resolves auto against the file descriptor the trace goes to.
func (m colorMode) enabled(fd int) bool {
	switch m {
	case colorAlways:
		return true
	case colorNever:
		return false
	default:
		return term.IsTerminal(fd)
	}
}

const (
	titleColumn = 16
	kindColumn  = 8
)

var kindColors = map[string]ansi.BasicColor{
	"init":   ansi.Green,
	"close":  ansi.Yellow,
	"closed": ansi.Red,
	"key":    ansi.Blue,
	"char":   ansi.Blue,
	"mouse":  ansi.Magenta,
	"wheel":  ansi.Magenta,
	"focus":  ansi.Cyan,
}

// tracer prints one line per window event.
type tracer struct {
	out   io.Writer
	color bool
}

func (t *tracer) event(title, kind, format string, args ...any) {
	fmt.Fprintln(t.out, t.format(title, kind, fmt.Sprintf(format, args...)))
}

func (t *tracer) format(title, kind, detail string) string {
	title = pad(ansi.Truncate(title, titleColumn, "…"), titleColumn)
	kind = pad(kind, kindColumn)
	if t.color {
		title = ansi.Style{}.Bold().Styled(title)
		if c, ok := kindColors[strings.TrimSpace(kind)]; ok {
			kind = ansi.Style{}.ForegroundColor(c).Styled(kind)
		}
	}
	return title + " " + kind + " " + detail
}

// pad right-fills s with spaces to width display cells.
func pad(s string, width int) string {
	if w := ansi.StringWidth(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
