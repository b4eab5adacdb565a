package lineio

import (
	"io"
	"sync"
)

// Script is a Reader that replays fixed lines, then returns End (io.EOF when
// nil). With Block set it instead waits at the end of its lines until
// interrupted, like a user who stops typing. It records everything passed to
// AddHistory. Use it to drive sessions without a terminal.
type Script struct {
	Lines   []string
	End     error
	Block   bool
	History []string
	Closed  bool

	next     int
	initOnce sync.Once
	stopOnce sync.Once
	stopped  chan struct{}
}

func (s *Script) done() chan struct{} {
	s.initOnce.Do(func() { s.stopped = make(chan struct{}) })
	return s.stopped
}

// Interrupt implements Interrupter.
func (s *Script) Interrupt() {
	done := s.done()
	s.stopOnce.Do(func() { close(done) })
}

// NewScript returns a Script replaying lines.
func NewScript(lines ...string) *Script {
	return &Script{Lines: lines}
}

// Readline implements Reader.
func (s *Script) Readline() (string, error) {
	select {
	case <-s.done():
		return "", io.EOF
	default:
	}
	if s.next >= len(s.Lines) {
		if s.Block {
			<-s.done()
			return "", io.EOF
		}
		if s.End != nil {
			return "", s.End
		}
		return "", io.EOF
	}
	line := s.Lines[s.next]
	s.next++
	return line, nil
}

// AddHistory implements Reader.
func (s *Script) AddHistory(line string) {
	s.History = append(s.History, line)
}

// Close implements Reader.
func (s *Script) Close() error {
	s.Closed = true
	return nil
}

var (
	_ Reader      = (*Script)(nil)
	_ Interrupter = (*Script)(nil)
	_ Interrupter = (*view)(nil)
)

// ScriptOpener hands out queued Scripts in order and records each Open call.
type ScriptOpener struct {
	Scripts []*Script
	Prompts []string
	Past    [][]string
	Err     error
}

// Opener returns the Opener function backed by o.
func (o *ScriptOpener) Opener() Opener {
	return func(prompt string, past []string) (Reader, error) {
		o.Prompts = append(o.Prompts, prompt)
		o.Past = append(o.Past, past)
		if o.Err != nil {
			return nil, o.Err
		}
		if len(o.Scripts) == 0 {
			return NewScript(), nil
		}
		s := o.Scripts[0]
		o.Scripts = o.Scripts[1:]
		return s, nil
	}
}
