package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme colors used throughout the UI
const (
	ColorAccent    = "86"  // Cyan/green - for titles, highlights
	ColorHighlight = "205" // Magenta - for focused controls, borders
	ColorDanger    = "196" // Red - for failures
	ColorMuted     = "241" // Gray - for dimmed text, hints
	ColorText      = "252" // Light gray - for normal text
	ColorWarning   = "208" // Orange - for validation messages
	ColorBrand     = "#005BB7"
)

// Styles contains shared style definitions used across views.
var Styles = struct {
	Title lipgloss.Style // Bold brand color - for the app title
	Box   lipgloss.Style // Standard box with rounded border

	// Button states
	Button         lipgloss.Style
	ButtonFocused  lipgloss.Style
	ButtonDisabled lipgloss.Style

	// Status line
	StatusBusy    lipgloss.Style
	StatusSuccess lipgloss.Style
	StatusError   lipgloss.Style
	StatusWarning lipgloss.Style

	Link  lipgloss.Style // Download link
	Muted lipgloss.Style // Dimmed text (paths)
	Hint  lipgloss.Style // Help/hint text
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorBrand)),
	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorBrand)).
		Padding(1, 2).
		Margin(1),
	Button: lipgloss.NewStyle().
		Padding(0, 2).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorMuted)).
		Foreground(lipgloss.Color(ColorText)),
	ButtonFocused: lipgloss.NewStyle().
		Padding(0, 2).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true),
	ButtonDisabled: lipgloss.NewStyle().
		Padding(0, 2).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorMuted)).
		Foreground(lipgloss.Color(ColorMuted)).
		Faint(true),
	StatusBusy: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)),
	StatusSuccess: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)).
		Bold(true),
	StatusError: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDanger)),
	StatusWarning: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorWarning)),
	Link: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Underline(true),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
}
