package reel

import (
	"fmt"
	"strconv"
	"strings"
)

// Brand holds the visual identity applied to every reel.
type Brand struct {
	Primary   string // subtitle text colour
	Secondary string // background colour
	Accent    string // subtitle outline colour
	Font      string
}

// DefaultBrand returns the Dagen house style.
func DefaultBrand() Brand {
	return Brand{
		Primary:   "#005BB7",
		Secondary: "#E5E5E5",
		Accent:    "#FF6600",
		Font:      "Merriweather",
	}
}

// HexToRGB parses a #RRGGBB colour.
func HexToRGB(hex string) (r, g, b uint8, err error) {
	h := strings.TrimPrefix(hex, "#")
	if len(h) != 6 {
		return 0, 0, 0, fmt.Errorf("invalid colour %q: want #RRGGBB", hex)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid colour %q: %w", hex, err)
	}
	return uint8(v >> 16), uint8(v >> 8), uint8(v), nil
}

// ffmpegColour renders hex as ffmpeg's 0xRRGGBB colour syntax.
func ffmpegColour(hex string) (string, error) {
	r, g, b, err := HexToRGB(hex)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("0x%02X%02X%02X", r, g, b), nil
}

// assColour renders hex as an ASS subtitle colour (&HBBGGRR&).
func assColour(hex string) (string, error) {
	r, g, b, err := HexToRGB(hex)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("&H%02X%02X%02X&", b, g, r), nil
}
