// Package config tests for configuration loading and environment overrides.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/r3d91ll/forthshell/pkg/forth"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "forthshell.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write temp file: %v", err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Shell.Prompt != ">> " {
		t.Errorf("expected prompt %q, got %q", ">> ", cfg.Shell.Prompt)
	}
	if cfg.Shell.CapturePrompt != "i> " {
		t.Errorf("expected capture prompt %q, got %q", "i> ", cfg.Shell.CapturePrompt)
	}
	if cfg.Shell.HistoryFile == cfg.Shell.CaptureHistoryFile {
		t.Error("history stores must be distinct")
	}
	if cfg.Engine.LoadGasLimit != 100 || cfg.Engine.CaptureGasLimit != 100 {
		t.Errorf("expected gas limits 100/100, got %d/%d", cfg.Engine.LoadGasLimit, cfg.Engine.CaptureGasLimit)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load("/nonexistent/path/to/forthshell.yaml")
	if err == nil {
		t.Fatal("expected error for nonexistent file")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected not-exist cause, got %v", err)
	}
}

func TestLoad_YAMLParseError(t *testing.T) {
	path := writeConfig(t, "shell:\n  prompt: \">> \"\n   bad_indent\n")

	_, err := Load(path)
	if err == nil {
		t.Fatal("expected error for invalid YAML")
	}
	if !strings.Contains(err.Error(), "failed to parse config") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestLoad_ValidConfig(t *testing.T) {
	path := writeConfig(t, `shell:
  prompt: "forth> "
  history_file: /tmp/a.txt
  capture_history_file: /tmp/b.txt
  echo_lines: false
engine:
  load_gas_limit: 0
  capture_gas_limit: 5000
log:
  level: debug
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Shell.Prompt != "forth> " {
		t.Errorf("expected prompt %q, got %q", "forth> ", cfg.Shell.Prompt)
	}
	if cfg.Shell.EchoLines {
		t.Error("expected echo_lines false")
	}
	// unset keys keep their defaults
	if cfg.Shell.CapturePrompt != "i> " {
		t.Errorf("expected default capture prompt, got %q", cfg.Shell.CapturePrompt)
	}
	if got := cfg.Engine.LoadGas(); got != forth.Unlimited() {
		t.Errorf("expected unlimited load gas, got %v", got)
	}
	if got := cfg.Engine.CaptureGas(); got != forth.Limited(5000) {
		t.Errorf("expected limited(5000) capture gas, got %v", got)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("expected log level debug, got %q", cfg.Log.Level)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		field   string
	}{
		{"negative history limit", "shell:\n  history_limit: -1\n", "shell.history_limit"},
		{"same history files", "shell:\n  history_file: h\n  capture_history_file: h\n", "shell.capture_history_file"},
		{"bad color", "shell:\n  color: rainbow\n", "shell.color"},
		{"negative load gas", "engine:\n  load_gas_limit: -5\n", "engine.load_gas_limit"},
		{"negative capture gas", "engine:\n  capture_gas_limit: -5\n", "engine.capture_gas_limit"},
		{"bad log level", "log:\n  level: loud\n", "log.level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.field) {
				t.Errorf("expected error to mention %q, got %v", tt.field, err)
			}
		})
	}
}

func TestLoadOrDefault_EmptyPath(t *testing.T) {
	cfg, err := LoadOrDefault("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Shell.Prompt != Default().Shell.Prompt {
		t.Errorf("expected default prompt, got %q", cfg.Shell.Prompt)
	}
}

func TestLoadOrDefault_FileNotFound(t *testing.T) {
	cfg, err := LoadOrDefault(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Engine.LoadGasLimit != Default().Engine.LoadGasLimit {
		t.Errorf("expected default load gas, got %d", cfg.Engine.LoadGasLimit)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("FORTHSHELL_SHELL_PROMPT", "env> ")
	t.Setenv("FORTHSHELL_SHELL_ECHO_LINES", "false")
	t.Setenv("FORTHSHELL_ENGINE_LOAD_GAS_LIMIT", "7")
	t.Setenv("FORTHSHELL_LOG_LEVEL", "info")

	path := writeConfig(t, "shell:\n  prompt: \"file> \"\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Shell.Prompt != "env> " {
		t.Errorf("environment should win over file, got %q", cfg.Shell.Prompt)
	}
	if cfg.Shell.EchoLines {
		t.Error("expected echo_lines overridden to false")
	}
	if cfg.Engine.LoadGasLimit != 7 {
		t.Errorf("expected load gas 7, got %d", cfg.Engine.LoadGasLimit)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("expected log level info, got %q", cfg.Log.Level)
	}
}

func TestEnvOverrides_InvalidValue(t *testing.T) {
	t.Setenv("FORTHSHELL_ENGINE_LOAD_GAS_LIMIT", "lots")
	if _, err := LoadOrDefault(""); err == nil {
		t.Fatal("expected error for non-numeric override")
	}
}

func TestDefaultConfigPath(t *testing.T) {
	t.Setenv(EnvConfigPath, "/etc/forthshell.yaml")
	if got := DefaultConfigPath(); got != "/etc/forthshell.yaml" {
		t.Errorf("expected env path, got %q", got)
	}

	t.Setenv(EnvConfigPath, "")
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(wd) })
	if got := DefaultConfigPath(); got != "forthshell.yaml" {
		t.Errorf("expected forthshell.yaml, got %q", got)
	}
}

func TestShellConfig_UseColor(t *testing.T) {
	tests := []struct {
		mode     string
		terminal bool
		want     bool
	}{
		{ColorAuto, true, true},
		{ColorAuto, false, false},
		{ColorAlways, false, true},
		{ColorNever, true, false},
	}
	for _, tt := range tests {
		s := ShellConfig{Color: tt.mode}
		if got := s.UseColor(tt.terminal); got != tt.want {
			t.Errorf("UseColor(%q, terminal=%v) = %v, want %v", tt.mode, tt.terminal, got, tt.want)
		}
	}
}
