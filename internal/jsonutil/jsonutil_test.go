package jsonutil

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnmarshalWithContext(t *testing.T) {
	var got struct {
		URL string `json:"url"`
	}
	require.NoError(t, UnmarshalWithContext([]byte(`{"url":"https://x"}`), &got, "scenes"))
	assert.Equal(t, "https://x", got.URL)

	err := UnmarshalWithContext([]byte(`{`), &got, "scenes")
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "scenes: "), "error should carry context: %v", err)
}

func TestDecodeWithContext(t *testing.T) {
	var got []string
	require.NoError(t, DecodeWithContext(strings.NewReader(`["a","b"]`), &got, "list"))
	assert.Equal(t, []string{"a", "b"}, got)

	err := DecodeWithContext(strings.NewReader(`nope`), &got, "list")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "list: ")
}

func TestEncode(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, map[string]string{"status": "ok"}))
	assert.JSONEq(t, `{"status":"ok"}`, buf.String())
}

func TestGetString(t *testing.T) {
	m := map[string]interface{}{"detail": "bad", "n": 1.0}
	assert.Equal(t, "bad", GetString(m, "detail"))
	assert.Equal(t, "", GetString(m, "n"))
	assert.Equal(t, "", GetString(m, "missing"))
}
