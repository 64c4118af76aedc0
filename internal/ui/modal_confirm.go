package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// ConfirmModal asks a yes/no question. Enter or y confirms; esc or n cancels.
type ConfirmModal struct {
	Title     string
	Label     string
	Help      string
	OnConfirm tea.Cmd
}

// Ensure ConfirmModal implements View.
var _ View = (*ConfirmModal)(nil)

// NewConfirmModal creates a confirmation modal.
func NewConfirmModal(title, label, help string, onConfirm tea.Cmd) *ConfirmModal {
	return &ConfirmModal{
		Title:     title,
		Label:     label,
		Help:      help,
		OnConfirm: onConfirm,
	}
}

// NewQuitWhileBusyModal asks before abandoning a conversion in flight.
func NewQuitWhileBusyModal(l *Localization) *ConfirmModal {
	return NewConfirmModal(l.T(KeyQuitTitle), l.T(KeyQuitBusy), l.T(KeyQuitHelp), tea.Quit)
}

// Init implements View.
func (m *ConfirmModal) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (m *ConfirmModal) Update(msg tea.Msg) (View, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc", "n":
			return m, func() tea.Msg { return DismissModalMsg{} }
		case "enter", "y":
			return m, m.OnConfirm
		}
	}
	return m, nil
}

// View implements View.
func (m *ConfirmModal) View() string {
	content := ModalStyles.TitleWarning.Render(m.Title) + "\n\n"
	content += ModalStyles.Label.Render(m.Label)
	if m.Help != "" {
		content += "\n\n" + ModalStyles.Help.Render(m.Help)
	}
	return ModalStyles.BoxWarning.Render(content)
}
