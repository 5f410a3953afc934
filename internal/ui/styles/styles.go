// Package styles provides shared lipgloss styles for prompts and tables.
//
// Styles are plain package variables so callers can render without passing
// a theme around. [Init] swaps them for the configured theme and must run
// before the first prompt is shown.
package styles

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Active colors
var (
	// Accent highlights menu numbers
	Accent color.Color = DefaultTheme.Accent

	// Success is used for the selection echo
	Success color.Color = DefaultTheme.Success

	// Error is used for corrective messages
	Error color.Color = DefaultTheme.Error

	// Muted is used for secondary table columns
	Muted color.Color = DefaultTheme.Muted
)

// Prompt styles
var (
	// QuestionStyle renders the question line of a prompt
	QuestionStyle = lipgloss.NewStyle().Bold(true)

	// MenuIndexStyle renders the "[n]" prefix of a menu line
	MenuIndexStyle = lipgloss.NewStyle().Foreground(Accent).Bold(true)

	// CorrectionStyle renders corrective messages after invalid input
	CorrectionStyle = lipgloss.NewStyle().Foreground(Error)

	// SelectedStyle renders the confirmation after a successful selection
	SelectedStyle = lipgloss.NewStyle().Foreground(Success)

	// MutedStyle renders secondary information
	MutedStyle = lipgloss.NewStyle().Foreground(Muted)

	// HeaderStyle renders table headers
	HeaderStyle = lipgloss.NewStyle().Bold(true)
)
