package ui

import (
	"context"

	"dagenreels/internal/convert"
	"dagenreels/internal/progress"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Options configures the root model.
type Options struct {
	Client     convert.Converter
	Store      Saver
	Lang       Lang
	InitialURL string
}

// AppModel is the root model. It hosts the converter view, draws modal
// overlays above it and handles quitting.
type AppModel struct {
	Converter *ConvertView
	Overlays  OverlayStack
	quitModal *ConfirmModal
	Keys      KeyMap
	Lang      *Localization
	Width     int
	Height    int
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return a.Converter.Init()
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.Width = msg.Width
		a.Height = msg.Height
	case progress.Event:
		// The quit prompt only applies while a video is in progress.
		if top, ok := a.Overlays.Peek(); ok && a.quitModal != nil && top == View(a.quitModal) {
			a.Overlays.Pop()
			a.quitModal = nil
		}
	case DismissModalMsg:
		if top, ok := a.Overlays.Pop(); ok && a.quitModal != nil && top == View(a.quitModal) {
			a.quitModal = nil
		}
		return a, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return a, tea.Quit
		}
		if cmd, ok := a.Overlays.UpdateTop(msg); ok {
			return a, cmd
		}
		if key.Matches(msg, a.Keys.Quit) {
			if !a.Converter.Enabled() {
				a.quitModal = NewQuitWhileBusyModal(a.Lang)
				a.Overlays.Push(a.quitModal)
				return a, nil
			}
			return a, tea.Quit
		}
	}

	v, cmd := a.Converter.Update(msg)
	if c, ok := v.(*ConvertView); ok {
		a.Converter = c
	}
	return a, cmd
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	base := a.Converter.View()
	if top, ok := a.Overlays.Peek(); ok {
		base += "\n" + top.View()
	}
	return base
}

// NewAppModel creates the root application model.
func NewAppModel(ctx context.Context, opts Options) *AppModel {
	if ctx == nil {
		ctx = context.Background()
	}
	lang := NewLocalization(opts.Lang)
	v := NewConvertView(ctx, opts.Client, opts.Store, lang)
	if opts.InitialURL != "" {
		v.SetValue(opts.InitialURL)
	}
	return &AppModel{
		Converter: v,
		Keys:      NewKeyMap(lang),
		Lang:      lang,
	}
}

// AsTeaModel returns a tea.Model for use with tea.NewProgram.
func (a *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: a}
}
