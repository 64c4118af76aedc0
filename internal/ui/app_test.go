package ui

import (
	"context"
	"testing"

	"dagenreels/internal/artifact"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T, initial string) (*AppModel, tea.Model, *fakeConverter) {
	t.Helper()
	conv := &fakeConverter{data: []byte("mp4")}
	a := NewAppModel(context.Background(), Options{
		Client:     conv,
		Store:      artifact.NewStoreAt(t.TempDir()),
		Lang:       LangEnglish,
		InitialURL: initial,
	})
	return a, a.AsTeaModel(), conv
}

func TestAppModel_QuitKeys(t *testing.T) {
	_, m, _ := newTestApp(t, "")
	for _, k := range []tea.KeyMsg{{Type: tea.KeyCtrlC}, {Type: tea.KeyEsc}} {
		_, cmd := m.Update(k)
		require.NotNil(t, cmd, k.String())
		_, ok := cmd().(tea.QuitMsg)
		assert.True(t, ok, "%s quits", k.String())
	}
}

func TestAppModel_InitialURLAndConvert(t *testing.T) {
	a, m, conv := newTestApp(t, "https://example.com/a")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m.Update(runEvent(t, cmd))

	assert.Equal(t, []string{"https://example.com/a"}, conv.Calls())
	assert.Equal(t, "Video ready!", a.Converter.Message())
	assert.Contains(t, m.View(), "dagen_reel.mp4")
}

func TestAppModel_WindowSize(t *testing.T) {
	a, m, _ := newTestApp(t, "")
	m.Update(tea.WindowSizeMsg{Width: 40, Height: 20})
	assert.Equal(t, 40, a.Width)
	assert.Equal(t, 20, a.Height)
	assert.NotEmpty(t, m.View())
}

func TestAppModel_QuitWhileBusyAsksFirst(t *testing.T) {
	a, m, _ := newTestApp(t, "https://example.com/a")
	_, pending := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.False(t, a.Converter.Enabled())

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Nil(t, cmd)
	require.Equal(t, 1, a.Overlays.Len())
	assert.Contains(t, m.View(), "Quit?")

	// esc inside the modal dismisses it
	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	m.Update(cmd())
	assert.Equal(t, 0, a.Overlays.Len())

	// the conversion still completes underneath
	m.Update(runEvent(t, pending))
	assert.True(t, a.Converter.Enabled())
}

func TestAppModel_ConfirmQuitWhileBusy(t *testing.T) {
	a, m, _ := newTestApp(t, "https://example.com/a")
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.Equal(t, 1, a.Overlays.Len())

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("y")})
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
}

func TestAppModel_EventsReachConverterUnderModal(t *testing.T) {
	a, m, _ := newTestApp(t, "https://example.com/a")
	_, pending := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.Equal(t, 1, a.Overlays.Len())

	m.Update(runEvent(t, pending))

	assert.True(t, a.Converter.Enabled())
	assert.NotNil(t, a.Converter.Result())
	assert.Equal(t, 0, a.Overlays.Len(), "quit prompt closes once the video is done")
	assert.NotContains(t, m.View(), "Quit?")

	// esc now quits directly
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
}
