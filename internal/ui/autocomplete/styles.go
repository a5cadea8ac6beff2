package autocomplete

import "github.com/charmbracelet/lipgloss"

// Styles contains the style definitions for one widget
type Styles struct {
	Prompt         lipgloss.Style
	Result         lipgloss.Style
	SelectedResult lipgloss.Style
	NoResults      lipgloss.Style
	ReadoutLabel   lipgloss.Style
	Readout        lipgloss.Style
}

// DefaultStyles creates a Styles instance with default values
func DefaultStyles() Styles {
	return Styles{
		Prompt:         lipgloss.NewStyle().Foreground(lipgloss.Color("99")).Bold(true),
		Result:         lipgloss.NewStyle().PaddingLeft(2),
		SelectedResult: lipgloss.NewStyle().PaddingLeft(2).Foreground(lipgloss.Color("226")).Background(lipgloss.Color("238")).Bold(true),
		NoResults:      lipgloss.NewStyle().PaddingLeft(2).Faint(true).Italic(true),
		ReadoutLabel:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Readout:        lipgloss.NewStyle().Foreground(lipgloss.Color("78")).Bold(true), // green
	}
}
