// Package config loads reelsd settings from the environment, optionally
// seeded from a .env file.
package config

import (
	"errors"
	"io/fs"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"dagenreels/internal/reel"
)

const (
	// DefaultPort is the default listen port for reelsd.
	DefaultPort = 8000
	// DefaultMaxRenders caps concurrent ffmpeg renders.
	DefaultMaxRenders = 2
)

// Config holds reelsd settings.
type Config struct {
	Port             int
	ElevenLabsAPIKey string
	VoiceID          string
	ModelID          string
	MaxScenes        int
	MaxRenders       int
	FFmpegPath       string
	FFprobePath      string
	WorkDir          string
}

// Load reads envFile (if it exists) into the process environment without
// overriding variables that are already set, then builds a Config.
// An empty envFile skips the file step.
func Load(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, err
		}
	}
	return FromEnv(), nil
}

// FromEnv builds a Config from environment variables, applying defaults for
// unset or invalid values.
func FromEnv() Config {
	return Config{
		Port:             envInt("PORT", DefaultPort, 1, 65535),
		ElevenLabsAPIKey: os.Getenv("ELEVENLABS_API_KEY"),
		VoiceID:          envString("ELEVENLABS_VOICE_ID", reel.DefaultVoiceID),
		ModelID:          envString("ELEVENLABS_MODEL_ID", reel.DefaultModelID),
		MaxScenes:        envInt("REELS_MAX_SCENES", reel.DefaultMaxScenes, 1, 50),
		MaxRenders:       envInt("REELS_MAX_RENDERS", DefaultMaxRenders, 1, 64),
		FFmpegPath:       envString("FFMPEG_PATH", "ffmpeg"),
		FFprobePath:      envString("FFPROBE_PATH", "ffprobe"),
		WorkDir:          os.Getenv("REELS_WORK_DIR"),
	}
}

func envString(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// envInt parses key as an int in [lo, hi]; anything else yields def.
func envInt(key string, def, lo, hi int) int {
	s := os.Getenv(key)
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < lo || n > hi {
		log.Printf("config: ignoring invalid %s=%q, using %d", key, s, def)
		return def
	}
	return n
}
