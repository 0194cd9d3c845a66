// Package analysis provides a deterministic, read-only breakdown of a
// document's content: the basic statistics plus the categories the cleaner
// can remove (empty, whitespace-only and duplicate lines).
//
// Key capabilities:
//   - Statistics as shown by the editor status line
//   - User-perceived character counts (grapheme clusters)
//   - Duplicate hotspots, ordered by how often a line repeats
//   - Markdown report rendering for the CLI
package analysis

import (
	"fmt"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/rivo/uniseg"

	"github.com/Mr-Dark-debug/limpio/internal/cleaner"
	"github.com/Mr-Dark-debug/limpio/pkg/timeutil"
)

// maxHotspots caps the duplicate list in a report.
const maxHotspots = 5

// DuplicateEntry is a line value that occurs more than once.
type DuplicateEntry struct {
	Line  string `json:"line"`
	Count int    `json:"count"`
	First int    `json:"first_line"` // 1-based
}

// Report is the full content breakdown of a document.
type Report struct {
	Stats          cleaner.Stats    `json:"stats"`
	Graphemes      int              `json:"graphemes"`
	EmptyLines     int              `json:"empty_lines"`
	WhitespaceOnly int              `json:"whitespace_only_lines"`
	PaddedLines    int              `json:"padded_lines"`
	DuplicateLines int              `json:"duplicate_lines"`
	LongestLine    int              `json:"longest_line"`
	CRLF           bool             `json:"crlf"`
	Hotspots       []DuplicateEntry `json:"duplicate_hotspots,omitempty"`
	Warnings       []string         `json:"warnings,omitempty"`
}

// Analyze builds the report for text.
func Analyze(text string) Report {
	lines := cleaner.Lines(text)

	r := Report{
		Stats:     cleaner.ComputeStats(text),
		Graphemes: uniseg.GraphemeClusterCount(text),
		CRLF:      strings.Contains(text, "\r\n"),
	}

	counts := make(map[string]int, len(lines))
	first := make(map[string]int, len(lines))

	for i, ln := range lines {
		trimmed := cleaner.TrimLine(ln)
		switch {
		case ln == "":
			r.EmptyLines++
		case trimmed == "":
			r.WhitespaceOnly++
		case trimmed != ln:
			r.PaddedLines++
		}

		if n := utf8.RuneCountInString(ln); n > r.LongestLine {
			r.LongestLine = n
		}

		if _, seen := first[ln]; !seen {
			first[ln] = i + 1
		} else {
			r.DuplicateLines++
		}
		counts[ln]++
	}

	for ln, c := range counts {
		if c > 1 {
			r.Hotspots = append(r.Hotspots, DuplicateEntry{Line: ln, Count: c, First: first[ln]})
		}
	}

	// Most repeated first, then by position in the document
	sort.Slice(r.Hotspots, func(i, j int) bool {
		if r.Hotspots[i].Count != r.Hotspots[j].Count {
			return r.Hotspots[i].Count > r.Hotspots[j].Count
		}
		return r.Hotspots[i].First < r.Hotspots[j].First
	})
	if len(r.Hotspots) > maxHotspots {
		r.Hotspots = r.Hotspots[:maxHotspots]
	}

	r.Warnings = warnings(r)
	return r
}

func warnings(r Report) []string {
	var out []string
	if r.CRLF {
		out = append(out, "Windows line endings (CRLF) found; any operation rewrites them as LF")
	}
	if r.WhitespaceOnly > 0 {
		out = append(out, fmt.Sprintf(
			"%d whitespace-only lines are only removed as empty when trimming is enabled", r.WhitespaceOnly))
	}
	if r.Graphemes != r.Stats.Chars {
		out = append(out, fmt.Sprintf(
			"%d characters render as %d visible symbols (combining marks or emoji sequences)",
			r.Stats.Chars, r.Graphemes))
	}
	return out
}

// ============================================================
// Report rendering
// ============================================================

// FormatReport renders a markdown report. stages and elapsed describe a
// cleaning run and may be empty.
func FormatReport(r Report, stages []cleaner.StageResult, elapsed time.Duration) string {
	var b strings.Builder

	b.WriteString("# Limpio Report\n\n")

	b.WriteString("## Summary\n\n")
	b.WriteString("| Metric | Value |\n")
	b.WriteString("|--------|-------|\n")
	fmt.Fprintf(&b, "| Lines | %d |\n", r.Stats.Lines)
	fmt.Fprintf(&b, "| Non-empty Lines | %d |\n", r.Stats.NonEmpty)
	fmt.Fprintf(&b, "| Characters | %d |\n", r.Stats.Chars)
	fmt.Fprintf(&b, "| Graphemes | %d |\n", r.Graphemes)
	fmt.Fprintf(&b, "| Empty Lines | %d |\n", r.EmptyLines)
	fmt.Fprintf(&b, "| Whitespace-only Lines | %d |\n", r.WhitespaceOnly)
	fmt.Fprintf(&b, "| Padded Lines | %d |\n", r.PaddedLines)
	fmt.Fprintf(&b, "| Duplicate Lines | %d |\n", r.DuplicateLines)
	fmt.Fprintf(&b, "| Longest Line | %d |\n\n", r.LongestLine)

	if len(stages) > 0 {
		b.WriteString("## Stages\n\n")
		b.WriteString("| Stage | In | Out | Removed |\n")
		b.WriteString("|-------|----|-----|---------|\n")
		for _, s := range stages {
			fmt.Fprintf(&b, "| %s | %d | %d | %d |\n", s.Stage, s.LinesIn, s.LinesOut, s.Removed())
		}
		if elapsed > 0 {
			fmt.Fprintf(&b, "\n**Processed in:** %s\n", timeutil.FormatDuration(elapsed))
		}
		b.WriteString("\n")
	}

	if len(r.Hotspots) > 0 {
		b.WriteString("## Duplicate Hotspots\n\n")
		b.WriteString("| Line | Count | First Seen |\n")
		b.WriteString("|------|-------|------------|\n")
		for _, h := range r.Hotspots {
			fmt.Fprintf(&b, "| `%s` | %d | %d |\n", h.Line, h.Count, h.First)
		}
		b.WriteString("\n")
	}

	if len(r.Warnings) > 0 {
		b.WriteString("## Warnings\n\n")
		for _, w := range r.Warnings {
			fmt.Fprintf(&b, "- %s\n", w)
		}
	}

	return b.String()
}
