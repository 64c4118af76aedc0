package reel

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteSRT_CumulativeTimings(t *testing.T) {
	scenes := []Scene{
		{Text: "Kort tekst", Duration: 2.5},
		{Text: "En litt lengre setning som må brytes over flere linjer", Duration: 61.25},
	}
	var buf bytes.Buffer
	require.NoError(t, WriteSRT(&buf, scenes))

	want := "1\n00:00:00,000 --> 00:00:02,500\nKort tekst\n\n" +
		"2\n00:00:02,500 --> 00:01:03,750\nEn litt lengre setning som må\nbrytes over flere linjer\n\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteSRT_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSRT(&buf, nil))
	assert.Empty(t, buf.String())
}

func TestSRTTimestamp(t *testing.T) {
	assert.Equal(t, "00:00:00,000", srtTimestamp(0))
	assert.Equal(t, "00:00:01,001", srtTimestamp(1.0006))
	assert.Equal(t, "01:01:01,100", srtTimestamp(3661.1))
	assert.Equal(t, "00:00:00,000", srtTimestamp(-3))
}
