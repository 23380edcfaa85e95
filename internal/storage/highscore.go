package storage

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// HighScoreFile persists a single best score as decimal text, the classic
// highscore.dat format. All operations are best-effort: Load returns 0 on any
// failure and Save's error may be ignored by the caller without consequence.
type HighScoreFile struct {
	path string
}

// NewHighScoreFile creates a file store at the given path. A leading ~
// expands to the home directory; expansion failure leaves the path as-is and
// surfaces later as a swallowed read/write failure.
func NewHighScoreFile(path string) *HighScoreFile {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, path[1:])
		}
	}
	return &HighScoreFile{path: path}
}

// Path returns the resolved file path.
func (f *HighScoreFile) Path() string {
	return f.path
}

// Load reads the stored high score. Missing file, unreadable file, or
// malformed content all yield 0.
func (f *HighScoreFile) Load() int {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return 0
	}
	score, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil || score < 0 {
		return 0
	}
	return score
}

// Save writes the high score as decimal text, creating parent directories as
// needed. The returned error is informational; the game continues regardless.
func (f *HighScoreFile) Save(score int) error {
	if dir := filepath.Dir(f.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(f.path, []byte(strconv.Itoa(score)), 0o644)
}
