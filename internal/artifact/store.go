package artifact

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	// DownloadDirEnv overrides where downloaded reels are written (for testing).
	DownloadDirEnv = "REELS_DOWNLOAD_DIR"
	// DefaultDownloadBase is the default download directory under the user's home.
	DefaultDownloadBase = "Downloads"
	// ReelFilename is the fixed suggested filename for a downloaded reel.
	ReelFilename = "dagen_reel.mp4"
)

// Store writes downloaded reels to a local directory.
// Layout: <base>/dagen_reel.mp4, <base>/dagen_reel-1.mp4, ...
type Store struct {
	baseDir string
}

// NewStore creates a store rooted at the user's home + DefaultDownloadBase,
// or at the path in REELS_DOWNLOAD_DIR if set.
func NewStore() (*Store, error) {
	base := os.Getenv(DownloadDirEnv)
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, DefaultDownloadBase)
	}
	return NewStoreAt(base), nil
}

// NewStoreAt creates a store rooted at dir.
func NewStoreAt(dir string) *Store {
	return &Store{baseDir: dir}
}

// BaseDir returns the directory files are written to.
func (s *Store) BaseDir() string {
	return s.baseDir
}

// Save writes data under name and returns the absolute path of the new file.
// An existing file is never overwritten; a numeric suffix is added instead.
func (s *Store) Save(name string, data []byte) (string, error) {
	if err := os.MkdirAll(s.baseDir, 0o755); err != nil {
		return "", fmt.Errorf("create download dir: %w", err)
	}
	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(filepath.Base(name), ext)
	for i := 0; ; i++ {
		candidate := stem + ext
		if i > 0 {
			candidate = fmt.Sprintf("%s-%d%s", stem, i, ext)
		}
		path := filepath.Join(s.baseDir, candidate)
		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if os.IsExist(err) {
			continue
		}
		if err != nil {
			return "", fmt.Errorf("create %s: %w", candidate, err)
		}
		if _, err := f.Write(data); err != nil {
			f.Close()
			os.Remove(path)
			return "", fmt.Errorf("write %s: %w", candidate, err)
		}
		if err := f.Close(); err != nil {
			return "", fmt.Errorf("close %s: %w", candidate, err)
		}
		abs, err := filepath.Abs(path)
		if err != nil {
			return path, nil
		}
		return abs, nil
	}
}

// FileURL returns a file:// URL for a saved path, suitable for terminal hyperlinks.
func FileURL(path string) string {
	return "file://" + filepath.ToSlash(path)
}
