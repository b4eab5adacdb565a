package shell

import (
	"context"
	"strings"

	serrors "github.com/r3d91ll/forthshell/pkg/errors"
	"github.com/r3d91ll/forthshell/pkg/log"
)

// Tokenize splits a line on whitespace into the command id and its
// parameters. ok is false when the line has no tokens.
func Tokenize(line string) (command string, params []string, ok bool) {
	words := strings.Fields(line)
	if len(words) == 0 {
		return "", nil, false
	}
	return words[0], words[1:], true
}

// Dispatcher routes a tokenized line to every command whose id matches.
type Dispatcher struct {
	registry *Registry
	errs     *serrors.Formatter
}

// NewDispatcher returns a Dispatcher over registry that reports command
// failures through errs.
func NewDispatcher(registry *Registry, errs *serrors.Formatter) *Dispatcher {
	return &Dispatcher{registry: registry, errs: errs}
}

// Dispatch runs every command registered under command, in registration
// order, even after an earlier one has handled the line. It returns true if
// any of them returned Handled without error.
//
// A failing command is reported and counts as not handled; the remaining
// commands still run. Once ctx is cancelled dispatch stops and the line
// counts as handled.
func (d *Dispatcher) Dispatch(ctx context.Context, command string, params []string, eng Engine) bool {
	logger := log.FromCtx(ctx)
	handled := false
	for _, c := range d.registry.commands {
		if c.ID() != command {
			continue
		}
		res, err := c.Handle(ctx, command, params, eng)
		if ctx.Err() != nil {
			// shutting down; nothing more is run or reported
			return true
		}
		if err != nil {
			se := serrors.Convert(err)
			logger.Debug().
				Str("command", command).
				Str("kind", string(se.Kind)).
				Str("code", se.Code).
				Err(se.Cause).
				Msg("command failed")
			d.errs.Display(se)
			continue
		}
		logger.Debug().Str("command", command).Stringer("result", res).Msg("dispatched")
		if res == Handled {
			handled = true
		}
	}
	return handled
}
