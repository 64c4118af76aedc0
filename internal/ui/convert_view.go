package ui

import (
	"context"
	"log"
	"strings"

	"dagenreels/internal/artifact"
	"dagenreels/internal/convert"
	"dagenreels/internal/progress"
	"dagenreels/internal/textutil"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// DownloadLink is the rendered result of a successful conversion.
type DownloadLink struct {
	Filename string // suggested filename, always artifact.ReelFilename
	Path     string // local file holding the reel
}

// ConvertView reads an article URL, runs one conversion per trigger and
// shows the outcome. The trigger is disabled while a request is in flight.
type ConvertView struct {
	input   textinput.Model
	spinner spinner.Model
	help    help.Model
	keys    KeyMap
	focus   *FocusManager
	lang    *Localization

	converter convert.Converter
	saver     Saver
	ctx       context.Context

	status     progress.Status
	messageKey string // localization key of the status line; "" = none
	result     *DownloadLink
	width      int
}

// Ensure ConvertView implements View.
var _ View = (*ConvertView)(nil)

const defaultInputWidth = 60

// NewConvertView creates the converter view.
func NewConvertView(ctx context.Context, c convert.Converter, s Saver, lang *Localization) *ConvertView {
	if lang == nil {
		lang = NewLocalization(LangNorwegian)
	}
	ti := textinput.New()
	ti.Placeholder = lang.T(KeyPlaceholder)
	ti.Width = defaultInputWidth
	ti.Prompt = "› "
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = Styles.StatusBusy

	v := &ConvertView{
		input:     ti,
		spinner:   sp,
		help:      newHelpModel(),
		keys:      NewKeyMap(lang),
		lang:      lang,
		converter: c,
		saver:     s,
		ctx:       ctx,
		status:    progress.StatusIdle,
		width:     defaultInputWidth + 10,
	}
	v.focus = NewFocusManager(FocusInput, FocusButton)
	v.focus.OnChange = func(_, to string) {
		if to == FocusInput {
			v.input.Focus()
		} else {
			v.input.Blur()
		}
	}
	return v
}

// SetValue pre-fills the URL field.
func (v *ConvertView) SetValue(s string) {
	v.input.SetValue(s)
	v.input.CursorEnd()
}

// Enabled reports whether the trigger accepts input: exactly when no request is in flight.
func (v *ConvertView) Enabled() bool {
	return !v.status.InFlight()
}

// Status returns the state of the most recent attempt.
func (v *ConvertView) Status() progress.Status {
	return v.status
}

// Message returns the localized status line text ("" when none).
func (v *ConvertView) Message() string {
	if v.messageKey == "" {
		return ""
	}
	return v.lang.T(v.messageKey)
}

// Result returns the download link of the last successful attempt, or nil.
func (v *ConvertView) Result() *DownloadLink {
	return v.result
}

// Init implements View.
func (v *ConvertView) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements View.
func (v *ConvertView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case progress.Event:
		v.finish(msg)
		return v, nil
	case spinner.TickMsg:
		if !v.status.InFlight() {
			return v, nil
		}
		var cmd tea.Cmd
		v.spinner, cmd = v.spinner.Update(msg)
		return v, cmd
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.input.Width = min(defaultInputWidth, max(10, msg.Width-12))
		return v, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, v.keys.Convert):
			return v, v.Trigger()
		case key.Matches(msg, v.keys.Next):
			v.focus.Next()
			return v, nil
		case key.Matches(msg, v.keys.Prev):
			v.focus.Prev()
			return v, nil
		case key.Matches(msg, v.keys.Language):
			v.lang.Toggle()
			v.keys = NewKeyMap(v.lang)
			v.input.Placeholder = v.lang.T(KeyPlaceholder)
			return v, nil
		}
	}
	if !v.focus.Is(FocusInput) {
		return v, nil
	}
	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

// Trigger starts a conversion for the current field value.
// Returns nil when the trigger is disabled or the value is blank.
func (v *ConvertView) Trigger() tea.Cmd {
	if !v.Enabled() {
		return nil
	}
	url := strings.TrimSpace(v.input.Value())
	if url == "" {
		v.messageKey = KeyValidation
		return nil
	}

	v.status = progress.StatusBusy
	v.messageKey = KeyBusy
	v.result = nil
	return tea.Batch(v.spinner.Tick, convertCmd(v.ctx, v.converter, v.saver, url))
}

// finish applies the outcome of an attempt and re-enables the trigger.
func (v *ConvertView) finish(ev progress.Event) {
	switch ev.Status {
	case progress.StatusDone:
		v.status = progress.StatusDone
		v.messageKey = KeySuccess
		v.result = &DownloadLink{Filename: artifact.ReelFilename, Path: ev.Path}
		log.Printf("ui: reel for %s saved to %s (%s bytes)", ev.URL, ev.Path, ev.Metadata["bytes"])
	default:
		v.status = progress.StatusError
		v.messageKey = KeyFailure
		v.result = nil
		log.Printf("ui: conversion failed for %s: %v", ev.URL, ev.Err)
	}
}

// View implements View.
func (v *ConvertView) View() string {
	var b strings.Builder
	b.WriteString(Styles.Title.Render(v.lang.T(KeyTitle)) + "\n\n")
	b.WriteString(v.input.View() + "\n")
	b.WriteString(v.renderButton() + "\n")

	if line := v.renderStatus(); line != "" {
		b.WriteString(line + "\n")
	}
	if v.result != nil {
		b.WriteString("\n" + v.renderResult() + "\n")
	}
	b.WriteString("\n" + v.help.ShortHelpView(v.keys.ShortHelp()))
	return Styles.Box.Render(b.String())
}

func (v *ConvertView) renderButton() string {
	label := v.lang.T(KeyButton)
	switch {
	case !v.Enabled():
		return Styles.ButtonDisabled.Render(label)
	case v.focus.Is(FocusButton):
		return Styles.ButtonFocused.Render(label)
	default:
		return Styles.Button.Render(label)
	}
}

func (v *ConvertView) renderStatus() string {
	msg := v.Message()
	if msg == "" {
		return ""
	}
	switch v.messageKey {
	case KeyBusy:
		return v.spinner.View() + " " + Styles.StatusBusy.Render(msg)
	case KeySuccess:
		return Styles.StatusSuccess.Render(msg)
	case KeyFailure:
		return Styles.StatusError.Render(msg)
	default:
		return Styles.StatusWarning.Render(msg)
	}
}

func (v *ConvertView) renderResult() string {
	link := hyperlink(artifact.FileURL(v.result.Path), Styles.Link.Render(v.lang.T(KeyDownload)+": "+v.result.Filename))
	where := v.lang.T(KeySavedTo) + " " + v.result.Path
	return lipgloss.JoinVertical(lipgloss.Left,
		"↓ "+link,
		Styles.Muted.Render(textutil.Truncate(where, max(20, v.width-8))),
	)
}

// hyperlink wraps text in an OSC 8 terminal hyperlink to target.
func hyperlink(target, text string) string {
	return "\x1b]8;;" + target + "\x1b\\" + text + "\x1b]8;;\x1b\\"
}
