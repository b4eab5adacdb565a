package errors

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// ANSI color codes for terminal output.
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m" // Error kind/code
	colorYellow = "\033[33m" // Context information
	colorCyan   = "\033[36m" // Suggestions
	colorDim    = "\033[90m" // Cause
	colorBold   = "\033[1m"
)

// Formatter handles error display with optional color support.
type Formatter struct {
	// UseColor enables ANSI color codes in output.
	UseColor bool

	// Writer is the output destination.
	Writer io.Writer

	// Indent is the prefix for context and suggestion lines.
	Indent string
}

// NewFormatter returns a Formatter writing to w.
func NewFormatter(w io.Writer, useColor bool) *Formatter {
	return &Formatter{
		UseColor: useColor,
		Writer:   w,
		Indent:   "  ",
	}
}

// IsTerminal reports whether w is a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok || f == nil {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// Format renders an error. Errors that are not *ShellError are converted first.
func (f *Formatter) Format(err error) string {
	if err == nil {
		return ""
	}
	se := Convert(err)

	var sb strings.Builder
	f.writeHeader(&sb, se)
	if se.HasContext() {
		f.writeContext(&sb, se)
	}
	if se.Cause != nil {
		f.writeCause(&sb, se)
	}
	if se.HasSuggestions() {
		f.writeSuggestions(&sb, se)
	}
	return strings.TrimRight(sb.String(), "\n")
}

// writeHeader writes "<Label> [CODE]: message".
func (f *Formatter) writeHeader(sb *strings.Builder, se *ShellError) {
	header := fmt.Sprintf("%s [%s]: ", KindLabel(se.Kind), se.Code)
	if f.UseColor {
		sb.WriteString(colorRed + colorBold + header + colorReset)
	} else {
		sb.WriteString(header)
	}
	sb.WriteString(se.Message)
	sb.WriteString("\n")
}

func (f *Formatter) writeContext(sb *strings.Builder, se *ShellError) {
	for _, key := range sortedKeys(se.Context) {
		sb.WriteString(f.Indent)
		if f.UseColor {
			sb.WriteString(colorYellow + key + ": " + colorReset)
		} else {
			sb.WriteString(key + ": ")
		}
		sb.WriteString(se.Context[key])
		sb.WriteString("\n")
	}
}

func (f *Formatter) writeCause(sb *strings.Builder, se *ShellError) {
	sb.WriteString(f.Indent)
	if f.UseColor {
		sb.WriteString(colorDim + "cause: " + se.Cause.Error() + colorReset)
	} else {
		sb.WriteString("cause: " + se.Cause.Error())
	}
	sb.WriteString("\n")
}

func (f *Formatter) writeSuggestions(sb *strings.Builder, se *ShellError) {
	for _, suggestion := range se.Suggestions {
		sb.WriteString(f.Indent)
		if f.UseColor {
			sb.WriteString(colorCyan + "→ " + suggestion + colorReset)
		} else {
			sb.WriteString("→ " + suggestion)
		}
		sb.WriteString("\n")
	}
}

// Display writes err to the formatter's writer between blank lines.
func (f *Formatter) Display(err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(f.Writer, "\n%s\n\n", f.Format(err))
}

// Sprint returns a formatted error string without colors.
func Sprint(err error) string {
	return NewFormatter(io.Discard, false).Format(err)
}

// KindLabel returns a human-readable label for an error kind.
func KindLabel(kind Kind) string {
	switch kind {
	case KindInterpreter:
		return "Interpreter Error"
	case KindIO:
		return "I/O Error"
	case KindParse:
		return "Parse Error"
	default:
		return "Error"
	}
}
