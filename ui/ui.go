// Package ui renders task output lines with styled prefixes.
package ui

import (
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

var (
	Cyan = color.New(color.FgCyan)
	Bold = color.New(color.Bold)
	Grey = color.New(color.Faint)
)

// UI decides whether styles are rendered or stripped.
type UI struct {
	colored bool
}

func New(colored bool) UI {
	return UI{colored: colored}
}

// Infer returns a UI that renders color only when f is a terminal.
func Infer(f *os.File) UI {
	return New(term.IsTerminal(int(f.Fd())))
}

// Apply styles s with c, or returns it untouched when color is off.
func (u UI) Apply(c *color.Color, s string) string {
	if !u.colored {
		return s
	}
	// fatih/color consults the process-wide NoColor default; copy so a
	// forced enable doesn't leak into the shared style values above.
	forced := *c
	forced.EnableColor()
	return forced.Sprint(s)
}
