package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	serrors "github.com/r3d91ll/forthshell/pkg/errors"
	"github.com/r3d91ll/forthshell/pkg/history"
	"github.com/r3d91ll/forthshell/pkg/lineio"
	"github.com/r3d91ll/forthshell/pkg/log"
)

// CaptureConfig holds capture sub-session settings.
type CaptureConfig struct {
	Prompt       string
	HistoryFile  string
	HistoryLimit int
	Color        bool
}

// Capture is the nested multi-line input sub-session. It keeps its own
// history, separate from the outer session's.
type Capture struct {
	open   lineio.Opener
	out    io.Writer
	prompt string
	path   string
	limit  int
	errs   *serrors.Formatter
}

// NewCapture returns a Capture reading through open and writing notices
// to out.
func NewCapture(open lineio.Opener, out io.Writer, cfg CaptureConfig) *Capture {
	return &Capture{
		open:   open,
		out:    out,
		prompt: cfg.Prompt,
		path:   cfg.HistoryFile,
		limit:  cfg.HistoryLimit,
		errs:   serrors.NewFormatter(out, cfg.Color),
	}
}

// Run collects lines until the user interrupts or ends input, and returns
// them each terminated by a single newline. A reader failure also ends the
// capture; it is reported and the lines read so far are returned. When ctx
// is cancelled the lines read so far are returned with ctx's error.
func (c *Capture) Run(ctx context.Context) (string, error) {
	logger := log.FromCtx(ctx)
	store := history.New(c.path, c.limit)
	loadHistory(ctx, store, c.out)

	reader, err := c.open(c.prompt, store.Lines())
	if err != nil {
		return "", serrors.FromIO(err).WithContext("op", "open capture reader")
	}

	stop := lineio.InterruptOnDone(ctx, reader)

	var sb strings.Builder
	lines := 0
	for {
		line, err := reader.Readline()
		if err != nil {
			if ctx.Err() == nil && !lineio.IsEnd(err) {
				fmt.Fprintf(c.out, "Error: %v\n", err)
				logger.Debug().Err(err).Msg("capture reader failed")
			}
			break
		}
		sb.WriteString(line)
		sb.WriteByte('\n')
		lines++
		store.Add(line)
		reader.AddHistory(line)
	}

	stop()
	if err := reader.Close(); err != nil && !errors.Is(err, io.EOF) {
		logger.Warn().Err(err).Msg("failed to close capture reader")
	}
	saveHistory(ctx, store, c.errs)
	logger.Debug().Int("lines", lines).Msg("capture finished")
	return sb.String(), ctx.Err()
}
