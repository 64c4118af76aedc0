package ui

import "github.com/charmbracelet/lipgloss"

// ModalStyles contains style definitions for modals.
var ModalStyles = struct {
	BoxWarning   lipgloss.Style // Warning modal box (red border)
	TitleWarning lipgloss.Style
	Label        lipgloss.Style
	Help         lipgloss.Style // Help text (dim gray)
}{
	BoxWarning: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorDanger)).
		Padding(1, 2).
		Margin(1),
	TitleWarning: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorDanger)),
	Label: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	Help: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
}
