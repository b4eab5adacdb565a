package help

// Style wraps text in ANSI codes when Color is set and returns it unchanged
// otherwise.
type Style struct {
	Color bool
}

func (s Style) wrap(codes, text string) string {
	if !s.Color || text == "" {
		return text
	}
	return codes + text + ColorReset
}

// Header returns text styled as a header (bold + green).
func (s Style) Header(text string) string { return s.wrap(ColorBold+ColorGreen, text) }

// Command returns text styled as a command id (cyan).
func (s Style) Command(text string) string { return s.wrap(ColorCyan, text) }

// Argument returns text styled as command arguments (yellow).
func (s Style) Argument(text string) string { return s.wrap(ColorYellow, text) }

// Shortcut returns text styled as a key binding (bold + yellow).
func (s Style) Shortcut(text string) string { return s.wrap(ColorBold+ColorYellow, text) }

// Dim returns text in dim/muted style (gray).
func (s Style) Dim(text string) string { return s.wrap(ColorGray, text) }
