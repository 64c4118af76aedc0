package reel

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

const (
	// ReelWidth and ReelHeight are the output dimensions (portrait 9:16).
	ReelWidth  = 1080
	ReelHeight = 1920
	// ReelFPS is the output frame rate.
	ReelFPS = 30
)

// Runner is the interface for running external media tools.
// Implementations can be swapped (e.g. os/exec, or a recorder for tests).
type Runner interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

// ExecRunner implements Runner using os/exec.
type ExecRunner struct{}

// Ensure ExecRunner implements Runner.
var _ Runner = ExecRunner{}

// Run implements Runner. Returns stdout; stderr is folded into the error.
func (ExecRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("%s: %w: %s", name, err, lastLines(stderr.String(), 5))
	}
	return stdout.Bytes(), nil
}

// lastLines returns the final n non-empty lines of s, joined by " | ".
// ffmpeg prints its banner first and the actual error last.
func lastLines(s string, n int) string {
	var lines []string
	for _, l := range strings.Split(s, "\n") {
		if l = strings.TrimSpace(l); l != "" {
			lines = append(lines, l)
		}
	}
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return strings.Join(lines, " | ")
}

// FFmpeg drives ffmpeg and ffprobe.
type FFmpeg struct {
	FFmpegPath  string
	FFprobePath string
	Runner      Runner
}

// NewFFmpeg returns an FFmpeg using the given binaries (PATH lookup when empty).
func NewFFmpeg(ffmpegPath, ffprobePath string) *FFmpeg {
	if ffmpegPath == "" {
		ffmpegPath = "ffmpeg"
	}
	if ffprobePath == "" {
		ffprobePath = "ffprobe"
	}
	return &FFmpeg{FFmpegPath: ffmpegPath, FFprobePath: ffprobePath, Runner: ExecRunner{}}
}

// Probe returns the duration of a media file in seconds.
func (f *FFmpeg) Probe(ctx context.Context, path string) (float64, error) {
	out, err := f.Runner.Run(ctx, f.FFprobePath,
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		path,
	)
	if err != nil {
		return 0, fmt.Errorf("probe %s: %w", path, err)
	}
	d, err := strconv.ParseFloat(strings.TrimSpace(string(out)), 64)
	if err != nil {
		return 0, fmt.Errorf("probe %s: parse duration %q: %w", path, strings.TrimSpace(string(out)), err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("probe %s: non-positive duration %g", path, d)
	}
	return d, nil
}

// Silence writes seconds of silent mono mp3 to dst.
func (f *FFmpeg) Silence(ctx context.Context, seconds float64, dst string) error {
	_, err := f.Runner.Run(ctx, f.FFmpegPath, silenceArgs(seconds, dst)...)
	if err != nil {
		return fmt.Errorf("silence %s: %w", dst, err)
	}
	return nil
}

func silenceArgs(seconds float64, dst string) []string {
	return []string{
		"-y", "-hide_banner", "-loglevel", "error",
		"-f", "lavfi", "-i", "anullsrc=r=44100:cl=mono",
		"-t", strconv.FormatFloat(seconds, 'f', 3, 64),
		"-c:a", "libmp3lame", "-q:a", "9",
		dst,
	}
}

// Compose renders scenes into an mp4 at out: a solid background in the brand
// secondary colour, the scene audio concatenated in order, and srtPath burned
// in as subtitles.
func (f *FFmpeg) Compose(ctx context.Context, scenes []Scene, srtPath string, brand Brand, out string) error {
	args, err := composeArgs(scenes, srtPath, brand, out)
	if err != nil {
		return err
	}
	if _, err := f.Runner.Run(ctx, f.FFmpegPath, args...); err != nil {
		return fmt.Errorf("compose %s: %w", out, err)
	}
	return nil
}

func composeArgs(scenes []Scene, srtPath string, brand Brand, out string) ([]string, error) {
	if len(scenes) == 0 {
		return nil, ErrNoScenes
	}
	bg, err := ffmpegColour(brand.Secondary)
	if err != nil {
		return nil, fmt.Errorf("brand background: %w", err)
	}
	style, err := subtitleStyle(brand)
	if err != nil {
		return nil, err
	}

	var total float64
	for _, s := range scenes {
		total += s.Duration
	}

	args := []string{
		"-y", "-hide_banner", "-loglevel", "error",
		"-f", "lavfi",
		"-i", fmt.Sprintf("color=c=%s:s=%dx%d:r=%d", bg, ReelWidth, ReelHeight, ReelFPS),
	}
	var concatIn strings.Builder
	for i, s := range scenes {
		args = append(args, "-i", s.AudioPath)
		fmt.Fprintf(&concatIn, "[%d:a]", i+1)
	}
	filter := fmt.Sprintf("%sconcat=n=%d:v=0:a=1[a];[0:v]subtitles=filename=%s:force_style='%s'[v]",
		concatIn.String(), len(scenes), escapeFilterValue(srtPath), style)

	args = append(args,
		"-filter_complex", filter,
		"-map", "[v]", "-map", "[a]",
		"-t", strconv.FormatFloat(total, 'f', 3, 64),
		"-c:v", "libx264", "-pix_fmt", "yuv420p", "-r", strconv.Itoa(ReelFPS),
		"-c:a", "aac",
		"-movflags", "+faststart",
		out,
	)
	return args, nil
}

// subtitleStyle returns an ASS force_style string for brand.
func subtitleStyle(brand Brand) (string, error) {
	text, err := assColour(brand.Primary)
	if err != nil {
		return "", fmt.Errorf("brand text colour: %w", err)
	}
	outline, err := assColour(brand.Accent)
	if err != nil {
		return "", fmt.Errorf("brand accent colour: %w", err)
	}
	return fmt.Sprintf("FontName=%s,FontSize=18,PrimaryColour=%s,OutlineColour=%s,Outline=1,Alignment=10",
		brand.Font, text, outline), nil
}

// escapeFilterValue escapes a path for use as an ffmpeg filtergraph option value.
func escapeFilterValue(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `:`, `\:`, `'`, `\'`, `,`, `\,`, `[`, `\[`, `]`, `\]`, `;`, `\;`)
	return r.Replace(s)
}
