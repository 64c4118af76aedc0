package reel

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSpeaker struct {
	mu    sync.Mutex
	fail  map[string]bool
	calls []string
}

func (f *fakeSpeaker) Speak(_ context.Context, text, dst string) error {
	f.mu.Lock()
	f.calls = append(f.calls, text)
	f.mu.Unlock()
	if f.fail[text] {
		return errors.New("tts unavailable")
	}
	return os.WriteFile(dst, []byte("speech:"+text), 0o644)
}

type fakeMedia struct {
	probe       float64
	silences    []float64
	composed    []Scene
	composeErr  error
	silenceErr  error
	srtContents string
}

func (f *fakeMedia) Probe(_ context.Context, path string) (float64, error) {
	return f.probe, nil
}

func (f *fakeMedia) Silence(_ context.Context, seconds float64, dst string) error {
	if f.silenceErr != nil {
		return f.silenceErr
	}
	f.silences = append(f.silences, seconds)
	return os.WriteFile(dst, []byte("silence"), 0o644)
}

func (f *fakeMedia) Compose(_ context.Context, scenes []Scene, srtPath string, _ Brand, out string) error {
	if f.composeErr != nil {
		return f.composeErr
	}
	b, err := os.ReadFile(srtPath)
	if err != nil {
		return err
	}
	f.srtContents = string(b)
	f.composed = scenes
	return os.WriteFile(out, []byte("mp4"), 0o644)
}

func TestPipeline_RenderWithSpeechAndFallback(t *testing.T) {
	speaker := &fakeSpeaker{fail: map[string]bool{"to": true}}
	media := &fakeMedia{probe: 1.5}
	p := &Pipeline{Speaker: speaker, Media: media, Brand: DefaultBrand(), WorkDir: t.TempDir()}

	v, err := p.Render(context.Background(), []string{"en", "to"})
	require.NoError(t, err)

	assert.Equal(t, []string{"en", "to"}, speaker.calls)
	assert.Equal(t, []float64{2.0}, media.silences, "failed speech falls back to silence")
	require.Len(t, v.Scenes, 2)
	assert.Equal(t, 1.5, v.Scenes[0].Duration)
	assert.Equal(t, 2.0, v.Scenes[1].Duration)
	assert.Equal(t, "reel.mp4", filepath.Base(v.Path))
	assert.FileExists(t, v.Path)
	assert.Contains(t, media.srtContents, "00:00:01,500 --> 00:00:03,500")

	require.NoError(t, v.Close())
	assert.NoFileExists(t, v.Path)
}

func TestPipeline_RenderSilentWithoutSpeaker(t *testing.T) {
	media := &fakeMedia{}
	p := &Pipeline{Media: media, Brand: DefaultBrand(), WorkDir: t.TempDir()}

	v, err := p.Render(context.Background(), []string{"a", "b", "c"})
	require.NoError(t, err)
	defer v.Close()
	assert.Len(t, media.silences, 3)
}

func TestPipeline_RenderNoScenes(t *testing.T) {
	p := &Pipeline{Media: &fakeMedia{}}
	_, err := p.Render(context.Background(), nil)
	assert.ErrorIs(t, err, ErrNoScenes)
}

func TestPipeline_RenderComposeFailureCleansUp(t *testing.T) {
	work := t.TempDir()
	p := &Pipeline{Media: &fakeMedia{composeErr: errors.New("ffmpeg: exit status 1")}, Brand: DefaultBrand(), WorkDir: work}

	_, err := p.Render(context.Background(), []string{"a"})
	require.ErrorContains(t, err, "exit status 1")

	entries, err := os.ReadDir(work)
	require.NoError(t, err)
	assert.Empty(t, entries, "work dir should be removed on failure")
}

func TestPipeline_RenderSilenceFailure(t *testing.T) {
	p := &Pipeline{Media: &fakeMedia{silenceErr: errors.New("no ffmpeg")}, WorkDir: t.TempDir()}
	_, err := p.Render(context.Background(), []string{"a"})
	assert.ErrorContains(t, err, "scene 1")
}

func TestPipeline_Summarise(t *testing.T) {
	p := &Pipeline{MaxScenes: 2}
	assert.Equal(t, []string{"a", "c"}, p.Summarise(context.Background(), "a\nb\nc\nd"))
}

func TestVideo_CloseNil(t *testing.T) {
	var v *Video
	assert.NoError(t, v.Close())
}
