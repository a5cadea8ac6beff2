package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains the style definitions for the host screen
type Styles struct {
	Title        lipgloss.Style
	Label        lipgloss.Style
	FocusedLabel lipgloss.Style
	Help         lipgloss.Style
	Main         lipgloss.Style
	Status       lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		Label:        lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		FocusedLabel: lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true), // yellow
		Help:         lipgloss.NewStyle().Faint(true),
		Main:         lipgloss.NewStyle().Padding(1, 2),
		Status:       lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
	}
}
