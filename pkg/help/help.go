// Package help renders the shell's command table.
//
// The table lists every registered command, in registration order, with its
// usage and help text. Styling uses ANSI color codes when enabled and
// degrades to aligned plain text otherwise.
//
//	r := help.NewRenderer(os.Stdout, true)
//	r.RenderTable(registry.Entries())
package help

import "io"

// Box drawing characters for visual structure.
const (
	BoxHorizontal = "─"
	BoxVertical   = "│"
	BoxTeeLeft    = "├"
)

// ANSI color codes for styled output.
const (
	ColorReset  = "\033[0m"
	ColorBold   = "\033[1m"
	ColorCyan   = "\033[36m"
	ColorGreen  = "\033[32m"
	ColorYellow = "\033[33m"
	ColorGray   = "\033[90m"
)

// Entry is one row of the command table.
type Entry interface {
	ID() string
	Usage() string
	Help() string
}

// Renderer formats and writes help output.
type Renderer struct {
	w     io.Writer
	style Style
}

// NewRenderer creates a new help renderer that writes to w.
func NewRenderer(w io.Writer, color bool) *Renderer {
	return &Renderer{w: w, style: Style{Color: color}}
}
