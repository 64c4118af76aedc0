// Package ui is the terminal front end for the reel converter, built on Bubble Tea.
//
// Core abstractions:
//   - View: a screen with its own model, update, view (Elm-style)
//   - ConvertView: the URL field, convert button, status line and download link
//   - FocusManager: rotates focus between the field and the button
//   - Localization: status and label strings per language (nb, en)
//
// A conversion runs as a single tea.Cmd; its progress.Event result is the only
// message that ends the busy state.
package ui
