package iojson

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"
)

// TextReader reads a plain-text document from the file named by its flag,
// falling back to stdin when the flag is unset.
type TextReader struct {
	fileFlagValue string

	// Stdin overrides os.Stdin; tests use it to feed input.
	Stdin io.Reader
}

// Flag returns the --file flag bound to the reader.
func (tr *TextReader) Flag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:        "file",
		Aliases:     []string{"f"},
		Usage:       "path to text file (reads from stdin if not provided)",
		Destination: &tr.fileFlagValue,
	}
}

// Read returns the whole document.
func (tr *TextReader) Read() (string, error) {
	var reader io.Reader

	switch {
	case tr.fileFlagValue != "":
		f, err := os.Open(tr.fileFlagValue)
		if err != nil {
			return "", fmt.Errorf("open file: %w", err)
		}
		defer func() { _ = f.Close() }()
		reader = f
	case tr.Stdin != nil:
		reader = tr.Stdin
	default:
		if term.IsTerminal(int(os.Stdin.Fd())) {
			return "", fmt.Errorf("no input provided (stdin is a terminal); use -f flag or pipe text input")
		}
		reader = os.Stdin
	}

	data, err := io.ReadAll(reader)
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}

	return string(data), nil
}
