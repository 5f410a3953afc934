package config

import (
	"errors"
	"os"
	"path/filepath"
)

const defaultConfig = `# sortbench configuration

# Optional: TOML file listing the algorithms offered by "sortbench run".
# Must be an absolute path or start with ~. When unset, the built-in
# TSODLULS functions are listed.
#
# The file holds one [[algorithm]] table per menu entry, in menu order:
#
#   [[algorithm]]
#   name = "Radix sort (octets, counting sort)"
#   function = "TSODLULS_sort_radix8_count"
#   stable = true
#
# registry_file = "~/.config/sortbench/algorithms.toml"

# Color theme for prompts: "default", "dracula", "nord" or "none"
theme = "default"

# The benchmark runner receives the collected values once all prompts
# are answered.
#
# Available placeholders in args:
#   {function} - implementation symbol of the chosen algorithm
#   {name}     - display name of the chosen algorithm
#   {index}    - menu number that was typed
#   {stable}   - "y" if the algorithm is stable, "n" otherwise
#   {macraffs} - "y" or "n", the answer to the macraffs question
#   {min}      - minimum number of elements
#   {max}      - maximum number of elements
[runner]
command = "./benchmark"
args = ["{function}", "{macraffs}", "{min}", "{max}"]
# dir = "~/src/TSODLULS/tests_benchmarks"
`

// DefaultConfig returns the default configuration template content.
func DefaultConfig() string {
	return defaultConfig
}

// Init writes the default config file to ConfigPath().
// If force is true, overwrites an existing file.
// Returns the path to the created file.
func Init(force bool) (string, error) {
	path, err := ConfigPath()
	if err != nil {
		return "", err
	}
	return path, writeTemplate(path, defaultConfig, force)
}

// InitLocal writes the default local config file into dir.
func InitLocal(dir string, force bool) (string, error) {
	path := filepath.Join(dir, LocalConfigFileName)
	return path, writeTemplate(path, defaultLocalConfig, force)
}

func writeTemplate(path, content string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return errors.New("config file already exists: " + path + " (use -f to overwrite)")
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(content), 0o644)
}
