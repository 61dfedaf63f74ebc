package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// screenshotLayout is the timestamp format used in screenshot file names.
const screenshotLayout = "20060102_150405"

// screenshotPath returns <dir>/<id>_<timestamp>.txt.
func screenshotPath(dir, id string, at time.Time) string {
	return filepath.Join(dir, fmt.Sprintf("%s_%s.txt", id, at.Format(screenshotLayout)))
}

// writeScreenshot writes the plain-text contents of s to a new file in dir.
// The returned path is set even when writing fails.
func writeScreenshot(dir, id string, at time.Time, s *core.Screen) (string, error) {
	path := screenshotPath(dir, id, at)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return path, fmt.Errorf("screenshot: create dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(s.String()+"\n"), 0o600); err != nil {
		return path, fmt.Errorf("screenshot: write: %w", err)
	}
	return path, nil
}
