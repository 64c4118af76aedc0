// Package textutil provides unicode-aware text utilities for TUI rendering
// and subtitle layout.
package textutil

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// TruncateEllipsis is the unicode ellipsis character used for truncation.
const TruncateEllipsis = "…"

// VisualWidth returns the visual width of a string, accounting for unicode characters.
// This is the number of terminal columns the string will occupy.
func VisualWidth(s string) int {
	return runewidth.StringWidth(s)
}

// VisualWidthStyled returns the visual width of a styled string.
// This accounts for ANSI escape codes and unicode characters.
func VisualWidthStyled(s string) int {
	return lipgloss.Width(s)
}

// Truncate truncates a string to fit within maxWidth visual columns.
// If truncation is needed, it appends the unicode ellipsis character (…).
// The result will be at most maxWidth visual columns wide.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}

	currentWidth := VisualWidth(s)
	if currentWidth <= maxWidth {
		return s
	}

	// We need to truncate. The ellipsis takes 1 column.
	availableWidth := maxWidth - VisualWidth(TruncateEllipsis)
	if availableWidth < 0 {
		return TruncateEllipsis
	}

	// Truncate character by character until we fit
	runes := []rune(s)
	result := make([]rune, 0, len(runes))
	currentResultWidth := 0

	for _, r := range runes {
		runeWidth := runewidth.RuneWidth(r)
		if currentResultWidth+runeWidth > availableWidth {
			break
		}
		result = append(result, r)
		currentResultWidth += runeWidth
	}

	return string(result) + TruncateEllipsis
}

// Wrap breaks s into lines of at most width visual columns, splitting on
// whitespace. Words wider than width are hard-broken across lines.
// Runs of whitespace (including newlines) collapse to a single break point.
func Wrap(s string, width int) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return nil
	}
	if width <= 0 {
		return []string{strings.Join(words, " ")}
	}

	var lines []string
	var line strings.Builder
	lineWidth := 0
	for _, w := range words {
		ww := VisualWidth(w)
		if ww > width {
			if lineWidth > 0 {
				lines = append(lines, line.String())
				line.Reset()
			}
			chunks := breakWord(w, width)
			lines = append(lines, chunks[:len(chunks)-1]...)
			last := chunks[len(chunks)-1]
			line.WriteString(last)
			lineWidth = VisualWidth(last)
			continue
		}
		if lineWidth > 0 && lineWidth+1+ww > width {
			lines = append(lines, line.String())
			line.Reset()
			lineWidth = 0
		}
		if lineWidth > 0 {
			line.WriteByte(' ')
			lineWidth++
		}
		line.WriteString(w)
		lineWidth += ww
	}
	lines = append(lines, line.String())
	return lines
}

// breakWord splits w into pieces of at most width columns. A rune wider
// than width still gets a piece of its own.
func breakWord(w string, width int) []string {
	var pieces []string
	var cur strings.Builder
	curWidth := 0
	for _, r := range w {
		rw := runewidth.RuneWidth(r)
		if curWidth > 0 && curWidth+rw > width {
			pieces = append(pieces, cur.String())
			cur.Reset()
			curWidth = 0
		}
		cur.WriteRune(r)
		curWidth += rw
	}
	return append(pieces, cur.String())
}
