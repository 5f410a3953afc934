package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/BurntSushi/toml"
)

// Environment variables that override config file settings
const (
	EnvConfig   = "SORTBENCH_CONFIG"
	EnvRunner   = "SORTBENCH_RUNNER"
	EnvRegistry = "SORTBENCH_REGISTRY"
)

// RunnerConfig describes the external benchmark runner
type RunnerConfig struct {
	Command string   `toml:"command" json:"command"`   // executable, looked up in PATH unless it contains a slash
	Args    []string `toml:"args" json:"args"`         // arguments, may contain placeholders
	Dir     string   `toml:"dir" json:"dir,omitempty"` // working directory (empty = current directory)
}

// Config holds the sortbench configuration
type Config struct {
	RegistryFile string       `toml:"registry_file" json:"registry_file,omitempty"` // optional TOML registry (empty = built-in)
	Theme        string       `toml:"theme" json:"theme"`                           // color theme preset
	Runner       RunnerConfig `toml:"runner" json:"runner"`

	// Path is the file the config was loaded from; empty when defaults are used.
	Path string `toml:"-" json:"path,omitempty"`
}

// DefaultRunnerCommand is the runner executed when none is configured
const DefaultRunnerCommand = "./benchmark"

// DefaultRunnerArgs passes the collected values positionally
var DefaultRunnerArgs = []string{"{function}", "{macraffs}", "{min}", "{max}"}

// Default returns the default configuration
func Default() Config {
	return Config{
		Theme: "default",
		Runner: RunnerConfig{
			Command: DefaultRunnerCommand,
			Args:    append([]string(nil), DefaultRunnerArgs...),
		},
	}
}

// ConfigPath returns the global config file location.
// SORTBENCH_CONFIG takes precedence over ~/.config/sortbench/config.toml.
func ConfigPath() (string, error) {
	if p := os.Getenv(EnvConfig); p != "" {
		return expandPath(p)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "sortbench", "config.toml"), nil
}

// Load reads the global config file and applies env overrides.
// Callers that merge .sortbench.toml use LoadGlobal and call ApplyEnv
// after merging instead.
func Load() (Config, error) {
	cfg, err := LoadGlobal()
	cfg, envErr := ApplyEnv(cfg)
	return cfg, errors.Join(err, envErr)
}

// LoadGlobal reads the global config file without env overrides.
// Returns Default() if the file doesn't exist (no error), and Default()
// with the error if the file exists but is invalid.
func LoadGlobal() (Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return Default(), nil
	}

	cfg, err := LoadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Default(), err
	}
	return cfg, nil
}

// LoadFile reads and validates a config file. Unset fields keep their
// default values. A missing file returns an error wrapping os.ErrNotExist.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), err
		}
		return Default(), fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	cfg.Path = path

	if err := cfg.normalize(); err != nil {
		return Default(), fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// ApplyEnv applies SORTBENCH_RUNNER and SORTBENCH_REGISTRY on top of cfg.
// Env vars take precedence over every config file, so this runs last.
// On error cfg is returned unchanged.
func ApplyEnv(cfg Config) (Config, error) {
	out := cfg
	out.Runner.Args = slices.Clone(cfg.Runner.Args)
	if v := os.Getenv(EnvRunner); v != "" {
		out.Runner.Command = v
	}
	if v := os.Getenv(EnvRegistry); v != "" {
		out.RegistryFile = v
	}
	if err := out.normalize(); err != nil {
		return cfg, err
	}
	return out, nil
}

// normalize validates cfg and expands ~ in paths
func (c *Config) normalize() error {
	if err := c.Validate(); err != nil {
		return err
	}

	var err error
	if c.RegistryFile, err = expandPath(c.RegistryFile); err != nil {
		return fmt.Errorf("expand registry_file: %w", err)
	}
	if c.Runner.Dir, err = expandPath(c.Runner.Dir); err != nil {
		return fmt.Errorf("expand runner.dir: %w", err)
	}
	return nil
}

// Validate checks field values
func (c *Config) Validate() error {
	if err := ValidatePath(c.RegistryFile, "registry_file"); err != nil {
		return err
	}
	if err := ValidatePath(c.Runner.Dir, "runner.dir"); err != nil {
		return err
	}
	if c.Runner.Command == "" {
		return errors.New("runner.command must not be empty")
	}
	if err := validateEnum(c.Theme, "theme", ValidThemes); err != nil {
		return err
	}
	return ValidatePlaceholders(c.Runner)
}

// ValidatePath checks that the path is absolute or starts with ~
// Returns error if path is relative (like "." or "..")
func ValidatePath(path, fieldName string) error {
	if path == "" {
		return nil
	}
	if path[0] == '~' {
		return nil
	}
	if !filepath.IsAbs(path) {
		return fmt.Errorf("%s must be absolute or start with ~, got: %q", fieldName, path)
	}
	return nil
}

// expandPath expands ~ to the user's home directory
func expandPath(path string) (string, error) {
	if path == "~" || (len(path) >= 2 && path[:2] == "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("expand ~: %w", err)
		}
		return filepath.Join(home, path[1:]), nil
	}
	return path, nil
}

type ctxKey struct{}

// WithConfig attaches the effective config to the context.
func WithConfig(ctx context.Context, cfg *Config) context.Context {
	return context.WithValue(ctx, ctxKey{}, cfg)
}

// FromContext returns the config stored in ctx, or the defaults.
func FromContext(ctx context.Context) *Config {
	if cfg, ok := ctx.Value(ctxKey{}).(*Config); ok {
		return cfg
	}
	cfg := Default()
	return &cfg
}
