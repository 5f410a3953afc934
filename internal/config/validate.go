package config

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
)

// Valid enum values for configuration fields.
var (
	ValidThemes = []string{"default", "dracula", "none", "nord"}

	// Placeholders are substituted in runner.args before the runner starts.
	Placeholders = []string{"function", "name", "index", "stable", "macraffs", "min", "max"}
)

// PlaceholderRegex matches {key} placeholders in the runner command and
// arguments. Group 1 is the placeholder name.
var PlaceholderRegex = regexp.MustCompile(`\{([a-zA-Z_][a-zA-Z0-9_-]*)\}`)

// ValidatePlaceholders rejects unknown {placeholders} in the runner command
// and arguments.
func ValidatePlaceholders(r RunnerConfig) error {
	for i, arg := range append([]string{r.Command}, r.Args...) {
		for _, m := range PlaceholderRegex.FindAllStringSubmatch(arg, -1) {
			if !slices.Contains(Placeholders, m[1]) {
				field := "runner.command"
				if i > 0 {
					field = fmt.Sprintf("runner.args[%d]", i-1)
				}
				return fmt.Errorf("unknown placeholder %s in %s: must be one of %s", m[0], field, formatOptions(Placeholders))
			}
		}
	}
	return nil
}

// validateEnum checks that value (if non-empty) is one of the allowed values.
func validateEnum(value, field string, allowed []string) error {
	if value == "" {
		return nil
	}
	if !slices.Contains(allowed, value) {
		return fmt.Errorf("invalid %s %q: must be %s", field, value, formatOptions(allowed))
	}
	return nil
}

// formatOptions formats a list of allowed values for error messages.
// E.g., ["a", "b", "c"] -> `"a", "b", or "c"`
func formatOptions(opts []string) string {
	quoted := make([]string, len(opts))
	for i, o := range opts {
		quoted[i] = fmt.Sprintf("%q", o)
	}
	if len(quoted) <= 2 {
		return strings.Join(quoted, " or ")
	}
	return strings.Join(quoted[:len(quoted)-1], ", ") + ", or " + quoted[len(quoted)-1]
}
