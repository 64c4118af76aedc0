package reel

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"unicode/utf8"
)

const (
	// DefaultElevenLabsURL is the ElevenLabs API base.
	DefaultElevenLabsURL = "https://api.elevenlabs.io"
	// DefaultVoiceID is the narrator voice ("Rachel").
	DefaultVoiceID = "21m00Tcm4TlvDq8ikWAM"
	// DefaultModelID supports Norwegian narration.
	DefaultModelID = "eleven_multilingual_v2"
)

// Speaker narrates text into an audio file at dst.
type Speaker interface {
	Speak(ctx context.Context, text, dst string) error
}

// ElevenLabs is a Speaker backed by the ElevenLabs text-to-speech API.
type ElevenLabs struct {
	APIKey  string
	VoiceID string
	ModelID string
	BaseURL string
	HTTP    *http.Client
}

// Ensure ElevenLabs implements Speaker.
var _ Speaker = (*ElevenLabs)(nil)

// NewElevenLabs returns a Speaker for apiKey, or nil when apiKey is empty
// so that callers fall back to silent narration.
func NewElevenLabs(apiKey, voiceID, modelID string) *ElevenLabs {
	if apiKey == "" {
		return nil
	}
	if voiceID == "" {
		voiceID = DefaultVoiceID
	}
	if modelID == "" {
		modelID = DefaultModelID
	}
	return &ElevenLabs{
		APIKey:  apiKey,
		VoiceID: voiceID,
		ModelID: modelID,
		BaseURL: DefaultElevenLabsURL,
		HTTP:    http.DefaultClient,
	}
}

type ttsRequest struct {
	Text    string `json:"text"`
	ModelID string `json:"model_id"`
}

// Speak implements Speaker. The response body (mp3) is written to dst.
func (e *ElevenLabs) Speak(ctx context.Context, text, dst string) error {
	body, err := json.Marshal(ttsRequest{Text: text, ModelID: e.ModelID})
	if err != nil {
		return fmt.Errorf("elevenlabs: marshal request: %w", err)
	}
	url := strings.TrimRight(e.BaseURL, "/") + "/v1/text-to-speech/" + e.VoiceID
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("elevenlabs: build request: %w", err)
	}
	req.Header.Set("xi-api-key", e.APIKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "audio/mpeg")

	hc := e.HTTP
	if hc == nil {
		hc = http.DefaultClient
	}
	resp, err := hc.Do(req)
	if err != nil {
		return fmt.Errorf("elevenlabs: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("elevenlabs: status %d: %s", resp.StatusCode, strings.TrimSpace(string(msg)))
	}

	f, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("elevenlabs: create %s: %w", dst, err)
	}
	if _, err := io.Copy(f, resp.Body); err != nil {
		f.Close()
		return fmt.Errorf("elevenlabs: write audio: %w", err)
	}
	return f.Close()
}

// SilenceDuration is the length of the silent fallback for text, in seconds:
// roughly reading speed, never shorter than two seconds.
func SilenceDuration(text string) float64 {
	return max(2.0, float64(utf8.RuneCountInString(text))/15.0)
}
