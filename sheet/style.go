package sheet

import "github.com/charmbracelet/lipgloss"

// Style controls the sheet's rendering.
type Style struct {
	Header       lipgloss.Style
	Gutter       lipgloss.Style
	GutterActive lipgloss.Style

	Cell        lipgloss.Style
	Selection   lipgloss.Style
	Active      lipgloss.Style
	Editing     lipgloss.Style
	Cursor      lipgloss.Style
	Disabled    lipgloss.Style
	Placeholder lipgloss.Style
}

func DefaultStyle() Style {
	gutter := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	return Style{
		Header:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252")),
		Gutter:       gutter,
		GutterActive: lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Bold(true),
		Cell:         lipgloss.NewStyle(),
		Selection:    lipgloss.NewStyle().Background(lipgloss.Color("237")),
		Active:       lipgloss.NewStyle().Background(lipgloss.Color("24")),
		Editing:      lipgloss.NewStyle().Underline(true),
		Cursor:       lipgloss.NewStyle().Reverse(true),
		Disabled:     lipgloss.NewStyle().Faint(true),
		Placeholder:  lipgloss.NewStyle().Foreground(lipgloss.Color("243")).Italic(true),
	}
}
