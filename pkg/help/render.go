package help

import (
	"fmt"
	"strings"
)

const (
	indentCategory = "  "
	indentCommand  = "    "
	columnGap      = "  "
)

// RenderTable writes every entry's id, usage and help in the given order.
func (r *Renderer) RenderTable(entries []Entry) {
	idWidth, usageWidth := 0, 0
	for _, e := range entries {
		if n := visibleLength(e.ID()); n > idWidth {
			idWidth = n
		}
		if n := visibleLength(e.Usage()); n > usageWidth {
			usageWidth = n
		}
	}

	r.writeln(r.style.Header("Help text:"))
	r.writeln(indentCategory + r.style.Dim(BoxTeeLeft+strings.Repeat(BoxHorizontal, idWidth+usageWidth+24)))
	for _, e := range entries {
		line := indentCommand + r.style.Dim(BoxVertical+" ") +
			r.style.Command(PadRight(e.ID(), idWidth)) + columnGap +
			r.style.Argument(PadRight(e.Usage(), usageWidth)) + columnGap +
			r.style.Dim(e.Help())
		r.writeln(strings.TrimRight(line, " "))
	}
	r.RenderShortcuts()
}

// RenderShortcuts writes the key binding reminder.
func (r *Renderer) RenderShortcuts() {
	r.writeln(indentCommand + r.style.Dim(BoxVertical+" ") + r.style.Dim("Keys: ") +
		r.style.Shortcut("Ctrl+C") + r.style.Dim("/") + r.style.Shortcut("Ctrl+D") + r.style.Dim(" exit  ") +
		r.style.Shortcut("↑↓") + r.style.Dim(" history"))
}

func (r *Renderer) writeln(s string) {
	fmt.Fprintln(r.w, s)
}
