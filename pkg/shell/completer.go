package shell

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/chzyer/readline"
)

// fileCommands take file paths as arguments and get path completion.
var fileCommands = []string{
	CmdLoad,
}

// ShellCompleter provides tab completion for command ids and file paths.
// It implements the readline.AutoCompleter interface.
type ShellCompleter struct {
	registry *Registry
}

// NewShellCompleter creates a completer over the ids in registry.
func NewShellCompleter(registry *Registry) *ShellCompleter {
	return &ShellCompleter{registry: registry}
}

// Ensure ShellCompleter implements readline.AutoCompleter at compile time.
var _ readline.AutoCompleter = (*ShellCompleter)(nil)

// Do implements readline.AutoCompleter.
// The first word completes to a command id; later words of a file command
// complete to paths.
func (c *ShellCompleter) Do(line []rune, pos int) (newLine [][]rune, length int) {
	if len(line) == 0 || pos <= 0 {
		return nil, 0
	}
	if pos > len(line) {
		pos = len(line)
	}

	lineStr := string(line[:pos])
	wordStart := findWordStart(lineStr)
	currentWord := lineStr[wordStart:]

	if strings.TrimSpace(lineStr[:wordStart]) == "" {
		if currentWord == "" {
			return nil, 0
		}
		return c.completeCommand(currentWord)
	}

	if isFileCommandContext(lineStr, wordStart) {
		return completePath(currentWord)
	}
	return nil, 0
}

// findWordStart returns the index where the current word begins.
// It looks for the last whitespace character (space or tab) and returns
// the position after it. If no whitespace is found, returns 0 (start of line).
func findWordStart(s string) int {
	lastSpace := strings.LastIndex(s, " ")
	lastTab := strings.LastIndex(s, "\t")

	wordStart := lastSpace
	if lastTab > wordStart {
		wordStart = lastTab
	}
	return wordStart + 1
}

// isFileCommandContext reports whether the line's command takes file paths.
func isFileCommandContext(line string, wordStart int) bool {
	fields := strings.Fields(line[:wordStart])
	if len(fields) == 0 {
		return false
	}
	for _, cmd := range fileCommands {
		if fields[0] == cmd {
			return true
		}
	}
	return false
}

// completeCommand returns completions for command ids starting with prefix.
func (c *ShellCompleter) completeCommand(prefix string) ([][]rune, int) {
	if c.registry == nil {
		return nil, 0
	}

	var matches [][]rune
	for _, id := range c.registry.IDs() {
		if strings.HasPrefix(id, prefix) {
			suffix := id[len(prefix):] + " "
			matches = append(matches, []rune(suffix))
		}
	}
	return matches, len(prefix)
}

// completePath returns completions for file system entries starting with
// prefix. Directories complete with a trailing separator.
func completePath(prefix string) ([][]rune, int) {
	dir, base := filepath.Split(prefix)
	readDir := dir
	if readDir == "" {
		readDir = "."
	}
	entries, err := os.ReadDir(readDir)
	if err != nil {
		return nil, 0
	}

	var names []string
	for _, e := range entries {
		name := e.Name()
		if !strings.HasPrefix(name, base) {
			continue
		}
		if strings.HasPrefix(name, ".") && !strings.HasPrefix(base, ".") {
			continue
		}
		if e.IsDir() {
			name += string(filepath.Separator)
		} else {
			name += " "
		}
		names = append(names, name)
	}
	sort.Strings(names)

	matches := make([][]rune, 0, len(names))
	for _, name := range names {
		matches = append(matches, []rune(name[len(base):]))
	}
	return matches, len([]rune(base))
}
