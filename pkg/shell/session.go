// Package shell is the interactive command loop that drives the interpreter
// engine: the command registry, line dispatch, the multi-line capture
// sub-session and the session loop itself.
package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"

	serrors "github.com/r3d91ll/forthshell/pkg/errors"
	"github.com/r3d91ll/forthshell/pkg/help"
	"github.com/r3d91ll/forthshell/pkg/history"
	"github.com/r3d91ll/forthshell/pkg/lineio"
	"github.com/r3d91ll/forthshell/pkg/log"
)

// Config holds session settings.
type Config struct {
	Prompt       string
	HistoryFile  string
	HistoryLimit int
	EchoLines    bool
	Color        bool
}

// Session is the outer read-dispatch loop. It owns the engine for its whole
// lifetime.
type Session struct {
	id         string
	registry   *Registry
	dispatcher *Dispatcher
	engine     Engine
	open       lineio.Opener
	history    *history.Store
	out        io.Writer
	prompt     string
	echo       bool
	help       *help.Renderer
	errs       *serrors.Formatter
	reader     lineio.Reader
}

// NewSession creates a session over eng that reads through open and writes
// to out.
func NewSession(registry *Registry, eng Engine, open lineio.Opener, out io.Writer, cfg Config) *Session {
	errs := serrors.NewFormatter(out, cfg.Color)
	return &Session{
		id:         uuid.NewString(),
		registry:   registry,
		dispatcher: NewDispatcher(registry, errs),
		engine:     eng,
		open:       open,
		history:    history.New(cfg.HistoryFile, cfg.HistoryLimit),
		out:        out,
		prompt:     cfg.Prompt,
		echo:       cfg.EchoLines,
		help:       help.NewRenderer(out, cfg.Color),
		errs:       errs,
	}
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// Run reads and handles lines until the user interrupts, input ends, the
// reader fails or ctx is cancelled. Cancellation also releases a Readline
// blocked waiting for the user. History is persisted before Run returns.
// Only cancellation is reported as an error.
func (s *Session) Run(ctx context.Context) error {
	logger := log.FromCtx(ctx).With().Str("session", s.id).Logger()
	ctx = logger.WithContext(ctx)

	loadHistory(ctx, s.history, s.out)

	reader, err := s.open(s.prompt, s.history.Lines())
	if err != nil {
		return serrors.FromIO(err).WithContext("op", "open reader")
	}
	s.reader = reader
	stop := lineio.InterruptOnDone(ctx, reader)
	defer func() {
		stop()
		s.reader = nil
		if cerr := reader.Close(); cerr != nil {
			logger.Warn().Err(cerr).Msg("failed to close reader")
		}
		saveHistory(ctx, s.history, s.errs)
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		line, err := reader.Readline()
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			switch {
			case errors.Is(err, lineio.ErrInterrupt):
				fmt.Fprintln(s.out, "CTRL-C")
			case errors.Is(err, io.EOF):
				fmt.Fprintln(s.out, "CTRL-D")
			default:
				fmt.Fprintf(s.out, "Error: %v\n", err)
				logger.Debug().Err(err).Msg("reader failed")
			}
			return nil
		}

		s.HandleLine(ctx, line)
	}
}

// HandleLine records line into history and dispatches it. When no command
// handles a non-empty line, the command table is shown.
func (s *Session) HandleLine(ctx context.Context, line string) {
	s.history.Add(line)
	if s.reader != nil {
		s.reader.AddHistory(line)
	}
	if s.echo {
		fmt.Fprintf(s.out, "Line: %s\n", line)
	}

	command, params, ok := Tokenize(line)
	if !ok {
		return
	}
	if !s.dispatcher.Dispatch(ctx, command, params, s.engine) {
		s.help.RenderTable(s.registry.Entries())
	}
}

func loadHistory(ctx context.Context, store *history.Store, out io.Writer) {
	logger := log.FromCtx(ctx)
	if err := store.Load(); err != nil {
		fmt.Fprintln(out, "No previous history.")
		if !os.IsNotExist(err) {
			logger.Warn().Err(err).Str("path", store.Path()).Msg("failed to load history")
		}
		return
	}
	logger.Info().Str("path", store.Path()).Int("entries", store.Len()).Msg("history loaded")
}

func saveHistory(ctx context.Context, store *history.Store, errs *serrors.Formatter) {
	logger := log.FromCtx(ctx)
	if err := store.Save(); err != nil {
		errs.Display(serrors.Wrap(err, serrors.ErrIOHistoryFailed, serrors.KindIO, "failed to save history").
			WithContext("path", store.Path()))
		logger.Warn().Err(err).Str("path", store.Path()).Msg("failed to save history")
		return
	}
	logger.Info().Str("path", store.Path()).Int("entries", store.Len()).Msg("history saved")
}
