// Package config handles forthshell configuration loading.
//
// Settings come from Default, then an optional YAML file, then FORTHSHELL_*
// environment variables.
package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/r3d91ll/forthshell/pkg/forth"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "FORTHSHELL_"

// EnvConfigPath names the environment variable holding the config file path.
const EnvConfigPath = EnvPrefix + "CONFIG"

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config is the root configuration structure.
type Config struct {
	Shell  ShellConfig  `yaml:"shell" envPrefix:"SHELL_"`
	Engine EngineConfig `yaml:"engine" envPrefix:"ENGINE_"`
	Log    LogConfig    `yaml:"log" envPrefix:"LOG_"`
}

// ShellConfig holds prompt and history settings.
type ShellConfig struct {
	Prompt             string `yaml:"prompt" env:"PROMPT"`
	CapturePrompt      string `yaml:"capture_prompt" env:"CAPTURE_PROMPT"`
	HistoryFile        string `yaml:"history_file" env:"HISTORY_FILE"`
	CaptureHistoryFile string `yaml:"capture_history_file" env:"CAPTURE_HISTORY_FILE"`
	HistoryLimit       int    `yaml:"history_limit" env:"HISTORY_LIMIT"` // 0 keeps everything
	Color              string `yaml:"color" env:"COLOR"`
	EchoLines          bool   `yaml:"echo_lines" env:"ECHO_LINES"`
}

// EngineConfig holds step budgets; 0 means unlimited, in which case only
// forth.MaxCallDepth stops a word that recurses forever.
type EngineConfig struct {
	LoadGasLimit    int `yaml:"load_gas_limit" env:"LOAD_GAS_LIMIT"`
	CaptureGasLimit int `yaml:"capture_gas_limit" env:"CAPTURE_GAS_LIMIT"`
}

// UseColor resolves the color mode; auto follows whether output is a
// terminal.
func (s ShellConfig) UseColor(terminal bool) bool {
	switch s.Color {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	return terminal
}

// LogConfig holds diagnostic logging settings.
type LogConfig struct {
	Level string `yaml:"level" env:"LEVEL"`
}

// LoadGas returns the budget for files loaded with the l command.
func (e EngineConfig) LoadGas() forth.GasLimit { return gasLimit(e.LoadGasLimit) }

// CaptureGas returns the budget for text entered in capture mode.
func (e EngineConfig) CaptureGas() forth.GasLimit { return gasLimit(e.CaptureGasLimit) }

func gasLimit(n int) forth.GasLimit {
	if n == 0 {
		return forth.Unlimited()
	}
	return forth.Limited(n)
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Shell: ShellConfig{
			Prompt:             ">> ",
			CapturePrompt:      "i> ",
			HistoryFile:        "history.txt",
			CaptureHistoryFile: "interactive_history.txt",
			HistoryLimit:       1000,
			Color:              ColorAuto,
			EchoLines:          true,
		},
		Engine: EngineConfig{
			LoadGasLimit:    100,
			CaptureGasLimit: 100,
		},
		Log: LogConfig{
			Level: "warn",
		},
	}
}

// Load loads configuration from a file and applies environment overrides.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return finish(cfg)
}

// LoadOrDefault loads config from path, or uses defaults if path is empty or
// missing. Environment overrides apply either way.
func LoadOrDefault(path string) (*Config, error) {
	if path == "" {
		return finish(Default())
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return finish(Default())
	}
	return Load(path)
}

func finish(cfg *Config) (*Config, error) {
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, fmt.Errorf("failed to apply environment overrides: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks value ranges and enumerations.
func (c *Config) Validate() error {
	if c.Shell.HistoryLimit < 0 {
		return fmt.Errorf("invalid shell.history_limit %d: must not be negative", c.Shell.HistoryLimit)
	}
	if c.Shell.HistoryFile != "" && c.Shell.HistoryFile == c.Shell.CaptureHistoryFile {
		return fmt.Errorf("invalid shell.capture_history_file %q: must differ from shell.history_file", c.Shell.CaptureHistoryFile)
	}
	switch c.Shell.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("invalid shell.color %q: want %s, %s or %s", c.Shell.Color, ColorAuto, ColorAlways, ColorNever)
	}
	if c.Engine.LoadGasLimit < 0 {
		return fmt.Errorf("invalid engine.load_gas_limit %d: must not be negative", c.Engine.LoadGasLimit)
	}
	if c.Engine.CaptureGasLimit < 0 {
		return fmt.Errorf("invalid engine.capture_gas_limit %d: must not be negative", c.Engine.CaptureGasLimit)
	}
	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("invalid log.level %q: %w", c.Log.Level, err)
	}
	return nil
}

// DefaultConfigPath returns the config file path: $FORTHSHELL_CONFIG if set,
// otherwise forthshell.yaml in the working directory or its config/ subdirectory.
func DefaultConfigPath() string {
	if path := os.Getenv(EnvConfigPath); path != "" {
		return path
	}
	if _, err := os.Stat("config/forthshell.yaml"); err == nil {
		return "config/forthshell.yaml"
	}
	return "forthshell.yaml"
}
