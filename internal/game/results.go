package game

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/color-game/internal/catalog"
	"github.com/vovakirdan/color-game/internal/palette"
)

// Score table layout
const (
	minNameWidth  = 6
	pointsWidth   = 8
	tableBorderPx = 2 // Header text plus its bottom border
)

// RenderScores renders the final scores as a table.
func RenderScores(theme palette.Theme, players Players) string {
	nameWidth := minNameWidth
	for _, p := range players {
		if w := lipgloss.Width(p.Name); w > nameWidth {
			nameWidth = w
		}
	}

	columns := []table.Column{
		{Title: "Player", Width: nameWidth + 2},
		{Title: "Points", Width: pointsWidth},
	}

	rows := make([]table.Row, len(players))
	for i, p := range players {
		rows[i] = table.Row{p.Name, strconv.Itoa(p.Score)}
	}

	return renderTable(theme, columns, rows)
}

// RenderCatalog renders every category with its items per color.
func RenderCatalog(theme palette.Theme, cat *catalog.Catalog) string {
	colors := theme.Colors.Colors()

	columns := make([]table.Column, 0, len(colors)+1)
	columns = append(columns, table.Column{Title: "Category", Width: lipgloss.Width("Category")})
	for _, name := range colors {
		columns = append(columns, table.Column{Title: name, Width: lipgloss.Width(name)})
	}

	rows := make([]table.Row, 0, cat.Len())
	for _, c := range cat.All() {
		row := table.Row{c.Name}
		columns[0].Width = max(columns[0].Width, lipgloss.Width(c.Name))
		for i, color := range colors {
			cell := strings.Join(c.ItemsFor(color), ", ")
			if cell == "" {
				cell = "-"
			}
			columns[i+1].Width = max(columns[i+1].Width, lipgloss.Width(cell))
			row = append(row, cell)
		}
		rows = append(rows, row)
	}

	return renderTable(theme, columns, rows)
}

// renderTable renders a static, unfocused table with theme styles.
func renderTable(theme palette.Theme, columns []table.Column, rows []table.Row) string {
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(false),
	)

	r := theme.Renderer
	t.SetStyles(table.Styles{
		Header: r.NewStyle().
			Bold(true).
			Padding(0, 1).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			Foreground(lipgloss.Color("3")),
		Cell:     r.NewStyle().Padding(0, 1),
		Selected: r.NewStyle(),
	})
	t.SetHeight(len(rows) + tableBorderPx)

	return t.View()
}
