// Package palette renders types.Color members for terminal output.
package palette

import (
	"os"

	"golang.org/x/term"

	"github.com/mesh-intelligence/sharedkit/pkg/types"
)

// ANSI color codes
const (
	codeReset = "\033[0m"
	codeRed   = "\033[31m"
	codeGreen = "\033[32m"
	codeBlue  = "\033[34m"
)

var codes = map[types.Color]string{
	types.Red:   codeRed,
	types.Green: codeGreen,
	types.Blue:  codeBlue,
}

// Painter renders colors, adding ANSI escapes only when enabled.
type Painter struct {
	enabled bool
}

// New returns a Painter that colors output when enabled is true.
func New(enabled bool) *Painter {
	return &Painter{enabled: enabled}
}

// ForFile returns a Painter that colors output only if f is a terminal.
func ForFile(f *os.File) *Painter {
	return New(term.IsTerminal(int(f.Fd())))
}

// Enabled reports whether the Painter emits escape codes.
func (p *Painter) Enabled() bool {
	return p != nil && p.enabled
}

// Paint returns the tag of c, wrapped in its ANSI color when enabled.
// Colors outside the declared set are returned as plain text.
func (p *Painter) Paint(c types.Color) string {
	code, ok := codes[c]
	if !p.Enabled() || !ok {
		return c.String()
	}
	return code + c.Tag() + codeReset
}
