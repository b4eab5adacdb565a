package help

import (
	"bytes"
	"strings"
	"testing"
)

type entry struct{ id, usage, help string }

func (e entry) ID() string    { return e.id }
func (e entry) Usage() string { return e.usage }
func (e entry) Help() string  { return e.help }

func TestRenderTable_PlainOrderAndAlignment(t *testing.T) {
	var buf bytes.Buffer
	NewRenderer(&buf, false).RenderTable([]Entry{
		entry{"l", "file1.f [file2.f]", "Load Forth files"},
		entry{"n", "", "Print number stack"},
		entry{"list_words", "", ""},
	})

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	want := []string{
		"Help text:",
		"  ├" + strings.Repeat("─", len("list_words")+len("file1.f [file2.f]")+24),
		"    │ l           file1.f [file2.f]  Load Forth files",
		"    │ n                              Print number stack",
		"    │ list_words",
		"    │ Keys: Ctrl+C/Ctrl+D exit  ↑↓ history",
	}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d:\n%s", len(lines), len(want), buf.String())
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestRenderTable_Color(t *testing.T) {
	var buf bytes.Buffer
	NewRenderer(&buf, true).RenderTable([]Entry{entry{"p", "n1 [n2]", "Push numbers"}})
	out := buf.String()
	if !strings.Contains(out, ColorCyan+"p") {
		t.Errorf("expected cyan command id, got %q", out)
	}
	if !strings.Contains(out, ColorYellow+"n1 [n2]") {
		t.Errorf("expected yellow usage, got %q", out)
	}
}

func TestVisibleLength(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"abc", 3},
		{ColorCyan + "abc" + ColorReset, 3},
		{"│ x", 3},
	}
	for _, tt := range tests {
		if got := visibleLength(tt.in); got != tt.want {
			t.Errorf("visibleLength(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestPadRight(t *testing.T) {
	if got := PadRight("ab", 4); got != "ab  " {
		t.Errorf("PadRight = %q", got)
	}
	if got := PadRight("abcdef", 4); got != "abcdef" {
		t.Errorf("PadRight should not truncate, got %q", got)
	}
}
