package lineio

import (
	"errors"
	"io"
	"sync/atomic"

	"github.com/chzyer/readline"
)

// Options configure a Terminal.
type Options struct {
	Stdin  io.ReadCloser // nil for os.Stdin
	Stdout io.Writer     // nil for os.Stdout
}

// Terminal owns the process's single github.com/chzyer/readline instance and
// hands out Readers as stacked views over it. Each view has its own prompt
// and history; opening a view hides the one below it until the new view is
// closed.
//
// readline keeps a background reader on stdin for every instance, so nested
// sessions must share one instance rather than open a second.
//
// The Terminal never writes history files; persistence belongs to the
// caller's history.Store.
//
// Close and the views' Interrupt may be called from any goroutine; a
// Readline blocked at that moment returns io.EOF.
type Terminal struct {
	rl        *readline.Instance
	closed    atomic.Bool
	completer readline.AutoCompleter
	views     []*view
}

// NewTerminal starts readline.
func NewTerminal(opts Options) (*Terminal, error) {
	t := &Terminal{}
	rl, err := readline.NewEx(&readline.Config{
		InterruptPrompt:        "^C",
		EOFPrompt:              "exit",
		AutoComplete:           t,
		DisableAutoSaveHistory: true,
		Stdin:                  opts.Stdin,
		Stdout:                 opts.Stdout,
	})
	if err != nil {
		return nil, err
	}
	t.rl = rl
	return t, nil
}

// SetCompleter sets tab completion for the outermost view only.
func (t *Terminal) SetCompleter(c readline.AutoCompleter) {
	t.completer = c
}

// Do implements readline.AutoCompleter by delegating to the completer while
// exactly one view is open.
func (t *Terminal) Do(line []rune, pos int) ([][]rune, int) {
	if t.completer == nil || len(t.views) != 1 {
		return nil, 0
	}
	return t.completer.Do(line, pos)
}

// Opener returns an Opener that pushes a new view.
func (t *Terminal) Opener() Opener {
	return func(prompt string, past []string) (Reader, error) {
		if t.isClosed() {
			return nil, errTerminalClosed
		}
		v := &view{
			t:       t,
			prompt:  prompt,
			history: append([]string(nil), past...),
		}
		t.views = append(t.views, v)
		t.apply(v)
		return v, nil
	}
}

// Stdout returns a writer that does not garble the prompt line.
func (t *Terminal) Stdout() io.Writer {
	return t.rl.Stdout()
}

// Close stops readline. Closing twice is a no-op.
func (t *Terminal) Close() error {
	if t.rl == nil || t.closed.Swap(true) {
		return nil
	}
	return t.rl.Close()
}

func (t *Terminal) isClosed() bool {
	return t.rl == nil || t.closed.Load()
}

var errTerminalClosed = errors.New("terminal closed")

func (t *Terminal) apply(v *view) {
	t.rl.SetPrompt(v.prompt)
	t.rl.ResetHistory()
	for _, line := range v.history {
		_ = t.rl.SaveHistory(line)
	}
}

func (t *Terminal) top() *view {
	if n := len(t.views); n > 0 {
		return t.views[n-1]
	}
	return nil
}

type view struct {
	t       *Terminal
	prompt  string
	history []string
	closed  bool
}

func (v *view) Readline() (string, error) {
	if v.closed || v.t.isClosed() {
		return "", io.EOF
	}
	if v.t.top() != v {
		return "", errors.New("reader is not the innermost view")
	}
	line, err := v.t.rl.Readline()
	if err != nil && v.t.isClosed() {
		return "", io.EOF
	}
	return line, err
}

// Interrupt closes the whole terminal, releasing a blocked Readline.
func (v *view) Interrupt() {
	_ = v.t.Close()
}

func (v *view) AddHistory(line string) {
	v.history = append(v.history, line)
	if !v.t.isClosed() && v.t.top() == v {
		_ = v.t.rl.SaveHistory(line)
	}
}

func (v *view) Close() error {
	if v.closed {
		return nil
	}
	v.closed = true
	views := v.t.views
	for i := len(views) - 1; i >= 0; i-- {
		if views[i] == v {
			v.t.views = append(views[:i], views[i+1:]...)
			break
		}
	}
	if top := v.t.top(); top != nil && !v.t.isClosed() {
		v.t.apply(top)
	}
	return nil
}
