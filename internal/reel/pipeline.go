package reel

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	oteltrace "go.opentelemetry.io/otel/trace"
)

// ErrNoScenes is returned when there is nothing to render.
var ErrNoScenes = errors.New("reel: no scenes to render")

const tracerName = "dagenreels/reel"

// Scene is one narrated segment of a reel.
type Scene struct {
	Text      string
	AudioPath string
	Duration  float64 // seconds
}

// Media is the subset of FFmpeg the pipeline needs.
type Media interface {
	Probe(ctx context.Context, path string) (float64, error)
	Silence(ctx context.Context, seconds float64, dst string) error
	Compose(ctx context.Context, scenes []Scene, srtPath string, brand Brand, out string) error
}

// Ensure FFmpeg implements Media.
var _ Media = (*FFmpeg)(nil)

// Pipeline converts articles into reels.
type Pipeline struct {
	HTTP      *http.Client // used for article fetches
	Speaker   Speaker      // nil means silent narration
	Media     Media
	Brand     Brand
	MaxScenes int
	WorkDir   string // parent for per-render temp dirs; "" = os.TempDir
}

// Video is a rendered reel on disk. Close removes it and its work files.
type Video struct {
	Path   string
	Scenes []Scene
	dir    string
}

// Close removes the render's temp directory.
func (v *Video) Close() error {
	if v == nil || v.dir == "" {
		return nil
	}
	return os.RemoveAll(v.dir)
}

// Fetch downloads the article text. Errors are *FetchError.
func (p *Pipeline) Fetch(ctx context.Context, url string) (string, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "reel.fetch",
		oteltrace.WithAttributes(attribute.String("reels.article.url", url)))
	defer span.End()

	text, err := FetchArticle(ctx, p.HTTP, url)
	if err != nil {
		recordError(span, err)
		return "", err
	}
	span.SetAttributes(attribute.Int("reels.article.bytes", len(text)))
	return text, nil
}

// Summarise picks the scene texts for article.
func (p *Pipeline) Summarise(ctx context.Context, article string) []string {
	_, span := otel.Tracer(tracerName).Start(ctx, "reel.summarise")
	defer span.End()

	scenes := Summarise(article, p.MaxScenes)
	span.SetAttributes(attribute.Int("reels.scene.count", len(scenes)))
	return scenes
}

// Render narrates texts, writes subtitles and composes the final mp4.
// The caller must Close the returned Video.
func (p *Pipeline) Render(ctx context.Context, texts []string) (*Video, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "reel.render",
		oteltrace.WithAttributes(attribute.Int("reels.scene.count", len(texts))))
	defer span.End()

	if len(texts) == 0 {
		recordError(span, ErrNoScenes)
		return nil, ErrNoScenes
	}

	dir, err := os.MkdirTemp(p.WorkDir, "reel-")
	if err != nil {
		recordError(span, err)
		return nil, fmt.Errorf("create work dir: %w", err)
	}
	v := &Video{dir: dir}
	fail := func(err error) (*Video, error) {
		recordError(span, err)
		v.Close()
		return nil, err
	}

	audioDir := filepath.Join(dir, "audio")
	if err := os.MkdirAll(audioDir, 0o755); err != nil {
		return fail(fmt.Errorf("create audio dir: %w", err))
	}

	scenes := make([]Scene, 0, len(texts))
	for i, text := range texts {
		s, err := p.narrate(ctx, i+1, text, audioDir)
		if err != nil {
			return fail(err)
		}
		scenes = append(scenes, s)
	}
	v.Scenes = scenes

	srtPath := filepath.Join(dir, "subs.srt")
	if err := p.writeSubtitles(ctx, scenes, srtPath); err != nil {
		return fail(err)
	}

	out := filepath.Join(dir, "reel.mp4")
	if err := p.compose(ctx, scenes, srtPath, out); err != nil {
		return fail(err)
	}
	v.Path = out
	return v, nil
}

// narrate produces the audio for scene idx. Speech failures fall back to
// silence; only a failed fallback is an error.
func (p *Pipeline) narrate(ctx context.Context, idx int, text, dir string) (Scene, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "reel.speak",
		oteltrace.WithAttributes(attribute.Int("reels.scene.index", idx)))
	defer span.End()

	dst := filepath.Join(dir, "scene-"+strconv.Itoa(idx)+".mp3")
	if p.Speaker != nil {
		err := p.Speaker.Speak(ctx, text, dst)
		if err == nil {
			d, perr := p.Media.Probe(ctx, dst)
			if perr == nil {
				span.SetAttributes(attribute.String("reels.speech.source", "tts"))
				return Scene{Text: text, AudioPath: dst, Duration: d}, nil
			}
			err = perr
		}
		log.Printf("reel: scene %d: speech failed, using silence: %v", idx, err)
	}

	d := SilenceDuration(text)
	if err := p.Media.Silence(ctx, d, dst); err != nil {
		recordError(span, err)
		return Scene{}, fmt.Errorf("scene %d: %w", idx, err)
	}
	span.SetAttributes(attribute.String("reels.speech.source", "silence"))
	return Scene{Text: text, AudioPath: dst, Duration: d}, nil
}

func (p *Pipeline) writeSubtitles(ctx context.Context, scenes []Scene, path string) error {
	_, span := otel.Tracer(tracerName).Start(ctx, "reel.subtitles")
	defer span.End()

	f, err := os.Create(path)
	if err != nil {
		recordError(span, err)
		return fmt.Errorf("create subtitles: %w", err)
	}
	if err := WriteSRT(f, scenes); err != nil {
		f.Close()
		recordError(span, err)
		return err
	}
	return f.Close()
}

func (p *Pipeline) compose(ctx context.Context, scenes []Scene, srtPath, out string) error {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "reel.compose")
	defer span.End()

	if err := p.Media.Compose(ctx, scenes, srtPath, p.Brand, out); err != nil {
		recordError(span, err)
		return err
	}
	if fi, err := os.Stat(out); err == nil {
		span.SetAttributes(attribute.Int64("reels.video.bytes", fi.Size()))
	}
	return nil
}

func recordError(span oteltrace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
