package theme

import "github.com/charmbracelet/lipgloss/v2"

// Theme centralizes Lip Gloss styles for the Bubble Tea UI.
type Theme struct {
	Header   lipgloss.Style
	Label    lipgloss.Style
	Open     lipgloss.Style
	Entry    lipgloss.Style
	Today    lipgloss.Style
	Future   lipgloss.Style
	Selected lipgloss.Style
	Footer   lipgloss.Style
	Panel    PanelTheme
}

// PanelTheme styles the entry panel.
type PanelTheme struct {
	Frame  lipgloss.Style
	Title  lipgloss.Style
	Date   lipgloss.Style
	Status lipgloss.Style
}

// Default returns the built-in theme used across the UI.
func Default() Theme {
	return Theme{
		Header:   lipgloss.NewStyle().Bold(true),
		Label:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true),
		Open:     lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Entry:    lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
		Today:    lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		Future:   lipgloss.NewStyle().Foreground(lipgloss.Color("237")),
		Selected: lipgloss.NewStyle().Reverse(true),
		Footer:   lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		Panel: PanelTheme{
			Frame:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
			Title:  lipgloss.NewStyle().Bold(true),
			Date:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Status: lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Italic(true),
		},
	}
}
