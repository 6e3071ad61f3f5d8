package ui

import "github.com/charmbracelet/lipgloss"

// TableStyles groups the lipgloss styles applied to result tables.
type TableStyles struct {
	Header  lipgloss.Style
	Cell    lipgloss.Style
	CellAlt lipgloss.Style
	Border  lipgloss.Style
	Mode    lipgloss.Style
}

// CurrentTableStyles builds table styles from the active palette.
func CurrentTableStyles() TableStyles {
	p := GetCurrentPalette()
	cell := lipgloss.NewStyle().Padding(0, 1).Foreground(p.Text)
	return TableStyles{
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Accent).
			Padding(0, 1).
			Align(lipgloss.Center),
		Cell:    cell,
		CellAlt: cell.Foreground(p.Dim),
		Border:  lipgloss.NewStyle().Foreground(p.Border),
		Mode:    cell.Foreground(p.Success).Bold(true),
	}
}
