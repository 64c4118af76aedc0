package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFocusManager_Rotates(t *testing.T) {
	f := NewFocusManager(FocusInput, FocusButton)
	assert.Equal(t, FocusInput, f.Current)

	assert.Equal(t, FocusButton, f.Next())
	assert.Equal(t, FocusInput, f.Next())
	assert.Equal(t, FocusButton, f.Prev())
	assert.Equal(t, FocusInput, f.Prev())
}

func TestFocusManager_SetFocusAndOnChange(t *testing.T) {
	var changes [][2]string
	f := NewFocusManager(FocusInput, FocusButton)
	f.OnChange = func(from, to string) { changes = append(changes, [2]string{from, to}) }

	assert.True(t, f.SetFocus(FocusButton))
	assert.True(t, f.SetFocus(FocusButton), "re-focusing is allowed")
	assert.False(t, f.SetFocus("missing"))
	assert.True(t, f.Is(FocusButton))

	assert.Equal(t, [][2]string{{FocusInput, FocusButton}}, changes, "OnChange fires only on real changes")
}

func TestFocusManager_Empty(t *testing.T) {
	f := NewFocusManager()
	assert.Equal(t, "", f.Next())
	assert.Equal(t, "", f.Prev())
}
