package tui

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-slingshot/internal/registry"
)

// tabulator is implemented by games that can itemize their score.
type tabulator interface {
	SummaryTable() [][]string
}

var summaryColumns = []table.Column{
	{Title: "Item", Width: 20},
	{Title: "Count", Width: 7},
	{Title: "Each", Width: 7},
	{Title: "Points", Width: 8},
}

// SummaryTable renders the game's score breakdown as a bordered table.
// It returns "" for games that do not itemize their score.
func SummaryTable(game registry.Game) string {
	tab, ok := game.(tabulator)
	if !ok {
		return ""
	}

	src := tab.SummaryTable()
	rows := make([]table.Row, len(src))
	for i, r := range src {
		rows[i] = table.Row(r)
	}

	t := table.New(
		table.WithColumns(summaryColumns),
		table.WithRows(rows),
		table.WithHeight(len(rows)+2),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Cell
	t.SetStyles(s)

	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240"))
	return border.Render(t.View())
}
