package reel

import (
	"fmt"
	"io"
	"math"
	"strings"

	"dagenreels/internal/textutil"
)

// SubtitleWidth is the column width subtitle lines wrap at.
const SubtitleWidth = 30

// WriteSRT writes one SubRip cue per scene. Cues are back to back: each starts
// where the previous one ended.
func WriteSRT(w io.Writer, scenes []Scene) error {
	var t0 float64
	for i, s := range scenes {
		t1 := t0 + s.Duration
		text := strings.Join(textutil.Wrap(s.Text, SubtitleWidth), "\n")
		if _, err := fmt.Fprintf(w, "%d\n%s --> %s\n%s\n\n", i+1, srtTimestamp(t0), srtTimestamp(t1), text); err != nil {
			return fmt.Errorf("write srt cue %d: %w", i+1, err)
		}
		t0 = t1
	}
	return nil
}

// srtTimestamp formats seconds as HH:MM:SS,mmm.
func srtTimestamp(sec float64) string {
	ms := int64(math.Round(sec * 1000))
	if ms < 0 {
		ms = 0
	}
	h := ms / 3_600_000
	ms %= 3_600_000
	m := ms / 60_000
	ms %= 60_000
	s := ms / 1000
	ms %= 1000
	return fmt.Sprintf("%02d:%02d:%02d,%03d", h, m, s, ms)
}
