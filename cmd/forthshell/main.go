// forthshell - interactive shell for a small Forth compiler
//
// Lines are dispatched to registered commands: load source files, push
// numbers, inspect the number stack and compiled opcodes, or enter source
// interactively with the i command. Ctrl+C or Ctrl+D exits.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/r3d91ll/forthshell/pkg/config"
	serrors "github.com/r3d91ll/forthshell/pkg/errors"
	"github.com/r3d91ll/forthshell/pkg/forth"
	"github.com/r3d91ll/forthshell/pkg/lineio"
	"github.com/r3d91ll/forthshell/pkg/log"
	"github.com/r3d91ll/forthshell/pkg/shell"
)

func main() {
	// .env is optional
	_ = godotenv.Load()

	cfgPath := config.DefaultConfigPath()
	cfg, err := config.LoadOrDefault(cfgPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := log.New(os.Stderr, cfg.Log.Level)
	ctx, cancel := context.WithCancel(log.NewContextWithLogger(context.Background(), logger))
	defer cancel()

	// Ctrl+C reaches readline as a key press; only external termination
	// arrives as a signal.
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGHUP)
	go func() {
		<-sigChan
		cancel()
	}()

	fmt.Println("This is the forthshell interactive compiler")

	term, err := lineio.NewTerminal(lineio.Options{})
	if err != nil {
		fmt.Printf("Failed to start terminal: %v\n", err)
		os.Exit(1)
	}
	defer term.Close()

	out := term.Stdout()
	color := cfg.Shell.UseColor(serrors.IsTerminal(os.Stdout))

	capture := shell.NewCapture(term.Opener(), out, shell.CaptureConfig{
		Prompt:       cfg.Shell.CapturePrompt,
		HistoryFile:  cfg.Shell.CaptureHistoryFile,
		HistoryLimit: cfg.Shell.HistoryLimit,
		Color:        color,
	})

	registry := shell.NewRegistry()
	shell.Builtins{
		Out:        out,
		Capture:    capture,
		LoadGas:    cfg.Engine.LoadGas(),
		CaptureGas: cfg.Engine.CaptureGas(),
	}.Register(registry)
	term.SetCompleter(shell.NewShellCompleter(registry))

	sess := shell.NewSession(registry, forth.New(), term.Opener(), out, shell.Config{
		Prompt:       cfg.Shell.Prompt,
		HistoryFile:  cfg.Shell.HistoryFile,
		HistoryLimit: cfg.Shell.HistoryLimit,
		EchoLines:    cfg.Shell.EchoLines,
		Color:        color,
	})
	logger.Info().
		Str("session", sess.ID()).
		Str("config", cfgPath).
		Stringer("load_gas", cfg.Engine.LoadGas()).
		Stringer("capture_gas", cfg.Engine.CaptureGas()).
		Msg("session started")

	if err := sess.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		serrors.NewFormatter(os.Stderr, color).Display(err)
		term.Close()
		os.Exit(1)
	}
}
