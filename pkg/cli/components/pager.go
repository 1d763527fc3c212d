package components

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/litebase/csvpager/pkg/cli/styles"
)

const maxPagerColumnWidth = 30

// PageFunc fetches the rows of a 1-indexed page.
type PageFunc func(page int) ([][]string, error)

// Pager is an interactive table that steps through the pages of a dataset.
type Pager struct {
	columns    []string
	err        error
	fetch      PageFunc
	page       int
	pageSize   int
	table      table.Model
	totalPages int
}

func NewPager(columns []string, pageSize, totalPages int, fetch PageFunc) (*Pager, error) {
	p := &Pager{
		columns:    columns,
		fetch:      fetch,
		pageSize:   pageSize,
		totalPages: totalPages,
		table: table.New(
			table.WithFocused(true),
			table.WithHeight(pageSize+1),
		),
	}

	if err := p.load(1); err != nil {
		return nil, err
	}

	return p, nil
}

// Err returns the error that stopped the pager, if any.
func (p *Pager) Err() error {
	return p.err
}

func (p *Pager) Page() int {
	return p.page
}

func (p *Pager) Rows() []table.Row {
	return p.table.Rows()
}

func (p *Pager) load(page int) error {
	rows, err := p.fetch(page)

	if err != nil {
		return err
	}

	p.page = page

	// Rows are padded or cut to the header so ragged lines render.
	tableRows := make([]table.Row, len(rows))

	for i, row := range rows {
		tableRow := make(table.Row, len(p.columns))
		copy(tableRow, row)
		tableRows[i] = tableRow
	}

	p.table.SetRows(nil)
	p.table.SetColumns(p.columnWidths(rows))
	p.table.SetRows(tableRows)
	p.table.GotoTop()

	return nil
}

func (p *Pager) columnWidths(rows [][]string) []table.Column {
	columns := make([]table.Column, len(p.columns))

	for i, title := range p.columns {
		width := lipgloss.Width(title)

		for _, row := range rows {
			if i < len(row) {
				width = max(width, lipgloss.Width(row[i]))
			}
		}

		columns[i] = table.Column{Title: title, Width: min(width, maxPagerColumnWidth)}
	}

	return columns
}

func (p *Pager) Init() tea.Cmd { return nil }

func (p *Pager) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return p, tea.Quit
		case "n", "right":
			if p.page < p.totalPages {
				if p.err = p.load(p.page + 1); p.err != nil {
					return p, tea.Quit
				}
			}

			return p, nil
		case "p", "left":
			if p.page > 1 {
				if p.err = p.load(p.page - 1); p.err != nil {
					return p, tea.Quit
				}
			}

			return p, nil
		}
	}

	var cmd tea.Cmd
	p.table, cmd = p.table.Update(msg)

	return p, cmd
}

func (p *Pager) View() string {
	status := styles.StatusStyle.Render(
		fmt.Sprintf("Page %d of %d • n/→ next • p/← previous • q quit", p.page, max(p.totalPages, 1)),
	)

	return lipgloss.JoinVertical(lipgloss.Left, p.table.View(), "", status) + "\n"
}
