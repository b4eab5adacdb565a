// Package lineio is the line-reading side of the shell: a Reader returns one
// line per call and signals the end of input with ErrInterrupt or io.EOF.
package lineio

import (
	"context"
	"errors"
	"io"

	"github.com/chzyer/readline"
)

// ErrInterrupt is returned by Readline when the user presses Ctrl+C.
var ErrInterrupt = readline.ErrInterrupt

// Reader reads lines interactively.
type Reader interface {
	// Readline blocks for the next line, without its terminator.
	Readline() (string, error)

	// AddHistory makes line available to history navigation.
	AddHistory(line string)

	Close() error
}

// Opener opens a Reader showing prompt, with past entries available to
// history navigation.
type Opener func(prompt string, past []string) (Reader, error)

// IsEnd reports whether err is the user ending input (Ctrl+C or Ctrl+D)
// rather than a failure.
func IsEnd(err error) bool {
	return errors.Is(err, ErrInterrupt) || errors.Is(err, io.EOF)
}

// Interrupter is a Reader whose blocked Readline can be released from
// another goroutine. The released call, and every later one, returns io.EOF.
type Interrupter interface {
	Interrupt()
}

// InterruptOnDone interrupts r once ctx is done, if r supports it. Call stop
// when reading is over.
func InterruptOnDone(ctx context.Context, r Reader) (stop func() bool) {
	return context.AfterFunc(ctx, func() {
		if i, ok := r.(Interrupter); ok {
			i.Interrupt()
		}
	})
}
