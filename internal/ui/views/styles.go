package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title         lipgloss.Style
	Selected      lipgloss.Style
	Detached      lipgloss.Style
	Section       lipgloss.Style
	Checked       lipgloss.Style
	Unchecked     lipgloss.Style
	Text          lipgloss.Style
	ID            lipgloss.Style
	Status        lipgloss.Style
	StatusError   lipgloss.Style
	StatusSuccess lipgloss.Style
	Help          lipgloss.Style
	Main          lipgloss.Style
	Scroll        lipgloss.Style
	HighlightBg   lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Selected:  lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		Detached:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Italic(true), // red
		Section:   lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Bold(true),   // blue
		Checked:   lipgloss.NewStyle().Foreground(lipgloss.Color("78")),              // green
		Unchecked: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Text:      lipgloss.NewStyle().Faint(true),
		ID:        lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1),
		StatusError:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")).MarginTop(1),
		StatusSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("78")).MarginTop(1),
		Help:          lipgloss.NewStyle().Faint(true).MarginTop(1),
		Main: lipgloss.NewStyle().
			Padding(1, 2),
		Scroll:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		HighlightBg: lipgloss.NewStyle().Background(lipgloss.Color("238")),
	}
}
