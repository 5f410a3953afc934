// Package registry holds the ordered list of sorting algorithms offered by
// the benchmark menu.
package registry

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/sahilm/fuzzy"
)

// Descriptor identifies the implementation behind a menu entry.
// The prompter never looks inside it; it is handed to the runner as-is.
type Descriptor struct {
	Function string `toml:"function"`          // symbol the runner benchmarks
	Stable   bool   `toml:"stable"`            // whether the sort is stable
	Summary  string `toml:"summary,omitempty"` // one-line description
}

// Entry is a named algorithm in the registry.
type Entry struct {
	Name string `toml:"name"`
	Descriptor
}

// Registry is an ordered set of algorithms. Order defines menu numbering.
type Registry struct {
	Algorithms []Entry `toml:"algorithm"`
}

// New creates a registry from entries, keeping their order.
func New(entries ...Entry) *Registry {
	return &Registry{Algorithms: entries}
}

// Load reads a registry file made of [[algorithm]] tables.
func Load(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("registry file not found: %s", path)
		}
		return nil, fmt.Errorf("read registry: %w", err)
	}

	var reg Registry
	if err := toml.Unmarshal(data, &reg); err != nil {
		return nil, fmt.Errorf("parse registry: %w", err)
	}

	if err := reg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid registry %s: %w", path, err)
	}

	return &reg, nil
}

// Validate checks that the registry is usable as a menu.
func (r *Registry) Validate() error {
	if r.Len() == 0 {
		return errors.New("no algorithms defined")
	}

	seen := make(map[string]bool, len(r.Algorithms))
	for i, e := range r.Algorithms {
		if strings.TrimSpace(e.Name) == "" {
			return fmt.Errorf("algorithm[%d]: name is required", i)
		}
		if e.Function == "" {
			return fmt.Errorf("algorithm %q: function is required", e.Name)
		}
		if seen[e.Name] {
			return fmt.Errorf("duplicate algorithm name: %s", e.Name)
		}
		seen[e.Name] = true
	}
	return nil
}

// Len returns the number of algorithms.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.Algorithms)
}

// Names returns the display names in menu order.
func (r *Registry) Names() []string {
	names := make([]string, r.Len())
	for i := range names {
		names[i] = r.Algorithms[i].Name
	}
	return names
}

// Find looks up an algorithm by exact name.
// The error suggests the closest names when there is no exact match.
func (r *Registry) Find(name string) (Match, error) {
	for i, e := range r.Algorithms {
		if e.Name == name {
			return Match{Index: i + 1, Entry: e}, nil
		}
	}

	matches := r.Filter(name)
	if len(matches) == 0 {
		return Match{}, fmt.Errorf("algorithm not found: %s", name)
	}
	n := min(len(matches), 3)
	suggestions := make([]string, n)
	for i, m := range matches[:n] {
		suggestions[i] = m.Entry.Name
	}
	return Match{}, fmt.Errorf("algorithm not found: %s (did you mean: %s?)", name, strings.Join(suggestions, ", "))
}

// Match is a filtered entry together with its 1-based menu number.
type Match struct {
	Index int
	Entry Entry
}

// nameSource implements fuzzy.Source over entry names.
type nameSource []Entry

func (s nameSource) String(i int) string { return s[i].Name }
func (s nameSource) Len() int            { return len(s) }

// Filter returns the entries whose name fuzzy-matches pattern, best match
// first. An empty pattern returns every entry in menu order.
func (r *Registry) Filter(pattern string) []Match {
	if pattern == "" {
		all := make([]Match, r.Len())
		for i := range all {
			all[i] = Match{Index: i + 1, Entry: r.Algorithms[i]}
		}
		return all
	}

	if r.Len() == 0 {
		return nil
	}
	found := fuzzy.FindFrom(pattern, nameSource(r.Algorithms))
	matches := make([]Match, len(found))
	for i, f := range found {
		matches[i] = Match{Index: f.Index + 1, Entry: r.Algorithms[f.Index]}
	}
	return matches
}
