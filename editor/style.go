package editor

import "github.com/charmbracelet/lipgloss"

// Style controls the editor's rendering.
type Style struct {
	Text   lipgloss.Style
	Cursor lipgloss.Style

	MenuItem     lipgloss.Style
	MenuSelected lipgloss.Style
	MenuHint     lipgloss.Style
}

func DefaultStyle() Style {
	return Style{
		Text:         lipgloss.NewStyle(),
		Cursor:       lipgloss.NewStyle().Reverse(true),
		MenuItem:     lipgloss.NewStyle().Background(lipgloss.Color("236")).Foreground(lipgloss.Color("252")),
		MenuSelected: lipgloss.NewStyle().Background(lipgloss.Color("31")).Foreground(lipgloss.Color("231")).Bold(true),
		MenuHint:     lipgloss.NewStyle().Foreground(lipgloss.Color("243")),
	}
}
