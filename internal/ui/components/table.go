package components

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"planwise/internal/ui/theme"
)

var headerStyle = lipgloss.NewStyle().Foreground(theme.Sapphire).Bold(true).Padding(0, 1)
var cellStyle = lipgloss.NewStyle().Padding(0, 1)

// Table renders rows under headers. A width of zero keeps the natural width.
func Table(headers []string, rows [][]string, width int) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(theme.Surface1)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	if width > 0 {
		t = t.Width(width)
	}
	return t.Render()
}

// Empty renders a placeholder line for a region with nothing to show.
func Empty(text string) string {
	return theme.Muted.Render(text)
}

func Credits(c float64) string {
	return strconv.FormatFloat(c, 'f', -1, 64)
}

func ID(id int64) string {
	return strconv.FormatInt(id, 10)
}
