package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocalization_DefaultsToNorwegian(t *testing.T) {
	l := NewLocalization("de")
	assert.Equal(t, LangNorwegian, l.Language())
	assert.Equal(t, "Video klar!", l.T(KeySuccess))
}

func TestLocalization_Toggle(t *testing.T) {
	l := NewLocalization(LangNorwegian)
	l.Toggle()
	assert.Equal(t, LangEnglish, l.Language())
	assert.Equal(t, "Generating video, please wait…", l.T(KeyBusy))
	l.Toggle()
	assert.Equal(t, LangNorwegian, l.Language())
}

func TestLocalization_UnknownKey(t *testing.T) {
	l := NewLocalization(LangEnglish)
	assert.Equal(t, "nope", l.T("nope"))
}

func TestLocalization_AllKeysTranslated(t *testing.T) {
	for key := range texts[LangNorwegian] {
		_, ok := texts[LangEnglish][key]
		assert.True(t, ok, "missing English text for %q", key)
	}
}
