package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// LocalConfigFileName is the per-directory override file
const LocalConfigFileName = ".sortbench.toml"

// LocalConfig holds overrides from a .sortbench.toml in the working
// directory. Zero values and nil slices mean "inherit from global".
type LocalConfig struct {
	RegistryFile string      `toml:"registry_file"` // may be relative to the file
	Runner       LocalRunner `toml:"runner"`

	// Dir is the directory the file was found in.
	Dir string `toml:"-"`
}

// LocalRunner holds local runner overrides
type LocalRunner struct {
	Command string   `toml:"command"`
	Args    []string `toml:"args"`
	Dir     string   `toml:"dir"`
}

// LoadLocal reads .sortbench.toml from dir.
// Returns nil (no error) if the file doesn't exist.
func LoadLocal(dir string) (*LocalConfig, error) {
	configFile := filepath.Join(dir, LocalConfigFileName)

	data, err := os.ReadFile(configFile)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read local config %s: %w", configFile, err)
	}

	var local LocalConfig
	if err := toml.Unmarshal(data, &local); err != nil {
		return nil, fmt.Errorf("failed to parse local config %s: %w", configFile, err)
	}
	local.Dir = dir

	// Relative paths are resolved against the directory holding the file
	if local.RegistryFile, err = expandPath(resolveRelative(dir, local.RegistryFile)); err != nil {
		return nil, fmt.Errorf("expand registry_file in %s: %w", configFile, err)
	}
	if local.Runner.Dir, err = expandPath(resolveRelative(dir, local.Runner.Dir)); err != nil {
		return nil, fmt.Errorf("expand runner.dir in %s: %w", configFile, err)
	}

	if err := ValidatePlaceholders(RunnerConfig{Command: local.Runner.Command, Args: local.Runner.Args}); err != nil {
		return nil, fmt.Errorf("%s: %w", configFile, err)
	}

	return &local, nil
}

func resolveRelative(dir, path string) string {
	if path == "" || path[0] == '~' || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}

// defaultLocalConfig is the template for sortbench config init --local
const defaultLocalConfig = `# sortbench local config
# Settings here override the global config when sortbench runs in this directory.
# Relative paths are resolved against this directory.

# registry_file = "algorithms.toml"

# [runner]
# command = "./tests_benchmarks/benchmark"
# args = ["{function}", "{macraffs}", "{min}", "{max}"]
# dir = "tests_benchmarks"
`

// DefaultLocalConfig returns the default local configuration template content.
func DefaultLocalConfig() string {
	return defaultLocalConfig
}
