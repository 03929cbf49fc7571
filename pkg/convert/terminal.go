package convert

import (
	"fmt"
	"os"

	"amath.elv.sh/pkg/diag"
	"amath.elv.sh/pkg/env"
	"amath.elv.sh/pkg/prog"
	"github.com/mattn/go-isatty"
	"github.com/muesli/reflow/wordwrap"
	"golang.org/x/term"
)

// Values of the --color flag.
const (
	colorAuto   = "auto"
	colorAlways = "always"
	colorNever  = "never"
)

// Decides whether error messages written to f are highlighted.
func useColor(mode string, f *os.File) (bool, error) {
	switch mode {
	case colorAlways:
		return true, nil
	case colorNever:
		return false, nil
	case colorAuto:
		if os.Getenv(env.NO_COLOR) != "" {
			return false, nil
		}
		return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()), nil
	default:
		return false, prog.BadUsage(fmt.Sprintf("unknown color mode %q", mode))
	}
}

// Returns the width to wrap error messages written to f at, or 0 for no
// wrapping.
func errorWidth(width int, f *os.File) int {
	if width > 0 {
		return width
	}
	fd := int(f.Fd())
	if term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil && w > 0 {
			return w
		}
	}
	return 0
}

func (c *converter) styleError(s string) string {
	if !c.color {
		s = diag.Plain(s)
	}
	if c.width > 0 {
		s = wordwrap.String(s, c.width)
	}
	return s
}
