// Package export writes the cleaned document out as a plain-text file.
package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/Mr-Dark-debug/limpio/internal/logging"
)

const (
	// Filename is the name of the exported file.
	Filename = "texto-limpio.txt"
	// MIMEType describes the exported payload.
	MIMEType = "text/plain; charset=utf-8"
)

// Write writes the flat text as UTF-8 bytes, unchanged.
func Write(w io.Writer, text string) error {
	if _, err := io.WriteString(w, text); err != nil {
		return fmt.Errorf("write export: %w", err)
	}
	return nil
}

// Save writes text to dir/texto-limpio.txt, creating dir when missing, and
// returns the written path. An empty dir means the working directory.
func Save(dir, text string) (string, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}

	path := filepath.Join(dir, Filename)
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return "", fmt.Errorf("write export: %w", err)
	}

	logging.Component("export").Info().
		Str("path", path).
		Int("bytes", len(text)).
		Msg("document exported")

	return path, nil
}
