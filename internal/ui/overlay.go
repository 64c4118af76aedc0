package ui

import tea "github.com/charmbracelet/bubbletea"

// DismissModalMsg is sent when the user cancels the top modal.
type DismissModalMsg struct{}

// OverlayStack manages modal views drawn over the converter.
// The topmost overlay receives key input first.
type OverlayStack struct {
	Stack []View
}

// Push adds an overlay to the top of the stack.
func (s *OverlayStack) Push(v View) {
	s.Stack = append(s.Stack, v)
}

// Pop removes and returns the top overlay.
func (s *OverlayStack) Pop() (View, bool) {
	if len(s.Stack) == 0 {
		return nil, false
	}
	top := s.Stack[len(s.Stack)-1]
	s.Stack = s.Stack[:len(s.Stack)-1]
	return top, true
}

// Peek returns the top overlay without removing it.
func (s *OverlayStack) Peek() (View, bool) {
	if len(s.Stack) == 0 {
		return nil, false
	}
	return s.Stack[len(s.Stack)-1], true
}

// Len returns the number of overlays in the stack.
func (s *OverlayStack) Len() int {
	return len(s.Stack)
}

// UpdateTop passes msg to the top overlay and replaces it with the result.
// The bool is false when the stack is empty.
func (s *OverlayStack) UpdateTop(msg tea.Msg) (tea.Cmd, bool) {
	if len(s.Stack) == 0 {
		return nil, false
	}
	v, cmd := s.Stack[len(s.Stack)-1].Update(msg)
	s.Stack[len(s.Stack)-1] = v
	return cmd, true
}
