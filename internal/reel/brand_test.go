package reel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHexToRGB(t *testing.T) {
	r, g, b, err := HexToRGB("#005BB7")
	require.NoError(t, err)
	assert.Equal(t, [3]uint8{0x00, 0x5B, 0xB7}, [3]uint8{r, g, b})

	r, g, b, err = HexToRGB("ff6600")
	require.NoError(t, err)
	assert.Equal(t, [3]uint8{0xFF, 0x66, 0x00}, [3]uint8{r, g, b})
}

func TestHexToRGB_Invalid(t *testing.T) {
	for _, in := range []string{"", "#fff", "#12345G", "#1234567"} {
		_, _, _, err := HexToRGB(in)
		assert.Error(t, err, "input %q", in)
	}
}

func TestColourFormats(t *testing.T) {
	c, err := ffmpegColour("#E5E5E5")
	require.NoError(t, err)
	assert.Equal(t, "0xE5E5E5", c)

	a, err := assColour("#005BB7")
	require.NoError(t, err)
	assert.Equal(t, "&HB75B00&", a)
}

func TestDefaultBrand(t *testing.T) {
	b := DefaultBrand()
	assert.Equal(t, "#005BB7", b.Primary)
	assert.Equal(t, "#E5E5E5", b.Secondary)
	assert.Equal(t, "#FF6600", b.Accent)
	assert.Equal(t, "Merriweather", b.Font)
}
