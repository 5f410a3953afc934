package styles

import (
	"fmt"
	"image/color"
	"slices"
	"strings"

	"charm.land/lipgloss/v2"
)

// Theme defines the colors used by prompts and tables
type Theme struct {
	Accent  color.Color // menu numbers
	Success color.Color // selection echo
	Error   color.Color // corrective messages
	Muted   color.Color // secondary text
}

// Preset themes
var (
	// DefaultTheme is the default color scheme
	DefaultTheme = Theme{
		Accent:  lipgloss.Color("212"), // pink
		Success: lipgloss.Color("82"),  // green
		Error:   lipgloss.Color("196"), // red
		Muted:   lipgloss.Color("240"), // dark gray
	}

	// NordTheme is based on the Nord color scheme
	NordTheme = Theme{
		Accent:  lipgloss.Color("#b48ead"), // nord15
		Success: lipgloss.Color("#a3be8c"), // nord14
		Error:   lipgloss.Color("#bf616a"), // nord11
		Muted:   lipgloss.Color("#4c566a"), // nord3
	}

	// DraculaTheme is based on the Dracula color scheme
	DraculaTheme = Theme{
		Accent:  lipgloss.Color("#ff79c6"),
		Success: lipgloss.Color("#50fa7b"),
		Error:   lipgloss.Color("#ff5555"),
		Muted:   lipgloss.Color("#6272a4"),
	}

	// NoneTheme keeps bold but uses terminal default colors
	NoneTheme = Theme{
		Accent:  lipgloss.NoColor{},
		Success: lipgloss.NoColor{},
		Error:   lipgloss.NoColor{},
		Muted:   lipgloss.NoColor{},
	}
)

var presets = map[string]Theme{
	"default": DefaultTheme,
	"nord":    NordTheme,
	"dracula": DraculaTheme,
	"none":    NoneTheme,
}

// ThemeNames returns the preset names, sorted.
func ThemeNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Init activates the named preset. An empty name selects the default theme.
func Init(name string) error {
	if name == "" {
		name = "default"
	}
	theme, ok := presets[name]
	if !ok {
		return fmt.Errorf("unknown theme %q (available: %s)", name, strings.Join(ThemeNames(), ", "))
	}
	applyTheme(theme)
	return nil
}

// applyTheme updates the package level colors and styles
func applyTheme(t Theme) {
	Accent = t.Accent
	Success = t.Success
	Error = t.Error
	Muted = t.Muted

	MenuIndexStyle = lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	CorrectionStyle = lipgloss.NewStyle().Foreground(t.Error)
	SelectedStyle = lipgloss.NewStyle().Foreground(t.Success)
	MutedStyle = lipgloss.NewStyle().Foreground(t.Muted)
}
