// Package static provides non-interactive terminal output components.
package static

import (
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"

	"github.com/raphi011/sortbench/internal/registry"
	"github.com/raphi011/sortbench/internal/ui/styles"
)

// AlgorithmHeaders are the columns of the algorithms table.
var AlgorithmHeaders = []string{"#", "NAME", "FUNCTION", "STABLE", "SUMMARY"}

// RenderTable creates a borderless table with aligned columns.
// Returns an empty string when there are no rows.
func RenderTable(headers []string, rows [][]string) string {
	if len(rows) == 0 {
		return ""
	}

	t := table.New().
		Headers(headers...).
		Rows(rows...).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderHeader(false).
		BorderColumn(false).
		BorderRow(false).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styles.HeaderStyle.PaddingRight(2)
			}
			if col == len(headers)-1 {
				return styles.MutedStyle
			}
			return lipgloss.NewStyle().PaddingRight(2)
		})

	var b strings.Builder
	b.WriteString(t.String())
	b.WriteString("\n")
	return b.String()
}

// AlgorithmRow returns the table cells for one registry match.
func AlgorithmRow(m registry.Match) []string {
	stable := "no"
	if m.Entry.Stable {
		stable = "yes"
	}
	return []string{strconv.Itoa(m.Index), m.Entry.Name, m.Entry.Function, stable, m.Entry.Summary}
}

// RenderAlgorithms renders registry matches as a table.
func RenderAlgorithms(matches []registry.Match) string {
	rows := make([][]string, len(matches))
	for i, m := range matches {
		rows[i] = AlgorithmRow(m)
	}
	return RenderTable(AlgorithmHeaders, rows)
}
