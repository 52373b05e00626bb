package output

import (
	"fmt"

	"github.com/fatih/color"
)

// Color renders a Sprintf style format string wrapped in ANSI color codes.
type Color func(format string, a ...any) string

var (
	Red     = newColor(color.FgHiRed)
	Yellow  = newColor(color.FgHiYellow)
	Cyan    = newColor(color.FgHiCyan)
	Blue    = newColor(color.FgHiBlue)
	Magenta = newColor(color.FgHiMagenta)
	White   = newColor(color.FgHiWhite)
	Dim     = newColor(color.Faint)
)

// Every Color is always-on, there's no terminal detection here. Callers
// turn colors off with the disabled argument of MaybeColor.
func newColor(attrs ...color.Attribute) Color {
	c := color.New(attrs...)
	c.EnableColor()
	return c.Sprintf
}

func MaybeColor(fn Color, disabled bool, format string, a ...any) string {
	if disabled {
		return fmt.Sprintf(format, a...)
	}
	return fn(format, a...)
}
