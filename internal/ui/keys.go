package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// KeyMap holds the converter's key bindings.
type KeyMap struct {
	Convert  key.Binding
	Next     key.Binding
	Prev     key.Binding
	Language key.Binding
	Quit     key.Binding
}

// Ensure KeyMap implements help.KeyMap.
var _ help.KeyMap = KeyMap{}

// NewKeyMap returns the default bindings with help text in l's language.
func NewKeyMap(l *Localization) KeyMap {
	return KeyMap{
		Convert: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", l.T(KeyHelpConvert)),
		),
		Next: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", l.T(KeyHelpFocus)),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab"),
		),
		Language: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("ctrl+l", l.T(KeyHelpLang)),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "esc"),
			key.WithHelp("esc", l.T(KeyHelpQuit)),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Convert, k.Next, k.Language, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// newHelpModel returns a help model styled like the rest of the UI.
func newHelpModel() help.Model {
	h := help.New()
	h.Styles.ShortKey = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true)
	h.Styles.ShortDesc = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted))
	h.Styles.ShortSeparator = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted))
	return h
}
