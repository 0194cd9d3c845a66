// Package cleaner implements the line transformation pipeline behind the
// text cleaner: splitting, filtering, de-duplicating and measuring plain text.
//
// Every operation is a pure function from the flat text of a document to a
// new flat text. Operations never fail; the only recovery path is the
// regex-to-literal fallback in RemoveMatching.
package cleaner

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Stats is the derived, read-only summary of a document.
type Stats struct {
	Lines    int `json:"lines"`
	NonEmpty int `json:"non_empty"`
	Chars    int `json:"chars"`
}

// Lines normalizes CRLF pairs to a single line feed and splits the text.
// The empty text is a single empty line; a lone carriage return is kept as
// line content.
func Lines(text string) []string {
	return strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
}

// Join renders lines back into flat text.
func Join(lines []string) string {
	return strings.Join(lines, "\n")
}

// TrimLine strips leading and trailing whitespace, including the byte order
// mark, from a single line.
func TrimLine(line string) string {
	return strings.TrimFunc(line, isTrimSpace)
}

func isTrimSpace(r rune) bool {
	return unicode.IsSpace(r) || r == '\uFEFF'
}

// ComputeStats derives line, non-empty line and character counts from the
// current flat text. Characters are counted as code points of the raw text,
// separators included.
func ComputeStats(text string) Stats {
	lines := Lines(text)

	nonEmpty := 0
	for _, ln := range lines {
		if TrimLine(ln) != "" {
			nonEmpty++
		}
	}

	return Stats{
		Lines:    len(lines),
		NonEmpty: nonEmpty,
		Chars:    utf8.RuneCountInString(text),
	}
}

// filterLines keeps the lines for which keep returns true.
func filterLines(lines []string, keep func(string) bool) []string {
	out := make([]string, 0, len(lines))
	for _, ln := range lines {
		if keep(ln) {
			out = append(out, ln)
		}
	}
	return out
}
