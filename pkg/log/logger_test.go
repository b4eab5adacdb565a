package log

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestNew_Level(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "info")

	logger.Debug().Msg("hidden")
	logger.Info().Str("file", "a.f").Msg("loaded")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("debug message should be filtered at info level: %q", out)
	}
	if !strings.Contains(out, "loaded") || !strings.Contains(out, "file=a.f") {
		t.Errorf("expected info message with field, got %q", out)
	}
}

func TestNew_BadLevelFallsBackToWarn(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "chatty")
	if got := logger.GetLevel(); got != zerolog.WarnLevel {
		t.Errorf("level = %v, want %v", got, zerolog.WarnLevel)
	}
}

func TestFromCtx(t *testing.T) {
	var buf bytes.Buffer
	ctx := NewContextWithLogger(context.Background(), New(&buf, "debug"))
	FromCtx(ctx).Debug().Msg("from context")
	if !strings.Contains(buf.String(), "from context") {
		t.Errorf("expected message through context logger, got %q", buf.String())
	}

	// a bare context yields a usable, disabled logger
	FromCtx(context.Background()).Info().Msg("dropped")
}
