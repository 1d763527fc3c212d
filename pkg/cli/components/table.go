package components

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/litebase/csvpager/pkg/cli/styles"
)

// Table renders rows under the given column headers as a bordered table.
func Table(columns []string, rows [][]string) string {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(styles.TableBorderStyle).
		Headers(columns...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styles.TableHeaderStyle
			}

			return styles.TableCellStyle
		}).
		String()
}

// TabularList renders key/value pairs as aligned lines.
func TabularList(items [][2]string) string {
	width := 0

	for _, item := range items {
		width = max(width, lipgloss.Width(item[0]))
	}

	keyStyle := lipgloss.NewStyle().Bold(true).Width(width + 2)
	lines := make([]string, 0, len(items))

	for _, item := range items {
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, keyStyle.Render(item[0]), item[1]))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
