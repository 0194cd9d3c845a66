package analysis

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mr-Dark-debug/limpio/internal/cleaner"
)

func TestAnalyze(t *testing.T) {
	text := "uno\n\n   \n  dos \nuno\r\nuno"

	r := Analyze(text)

	assert.Equal(t, cleaner.Stats{Lines: 6, NonEmpty: 4, Chars: 24}, r.Stats)
	assert.Equal(t, 1, r.EmptyLines)
	assert.Equal(t, 1, r.WhitespaceOnly)
	assert.Equal(t, 1, r.PaddedLines)
	assert.Equal(t, 2, r.DuplicateLines)
	assert.Equal(t, 6, r.LongestLine)
	assert.True(t, r.CRLF)

	// CRLF is a single grapheme cluster
	assert.Equal(t, 23, r.Graphemes)

	require.Len(t, r.Hotspots, 1)
	assert.Equal(t, DuplicateEntry{Line: "uno", Count: 3, First: 1}, r.Hotspots[0])
	assert.Len(t, r.Warnings, 3)
}

func TestAnalyzeEmpty(t *testing.T) {
	r := Analyze("")

	assert.Equal(t, cleaner.Stats{Lines: 1, NonEmpty: 0, Chars: 0}, r.Stats)
	assert.Equal(t, 1, r.EmptyLines)
	assert.Zero(t, r.DuplicateLines)
	assert.Empty(t, r.Hotspots)
	assert.Empty(t, r.Warnings)
}

func TestAnalyzeGraphemes(t *testing.T) {
	// "e" followed by a combining acute accent
	r := Analyze("cafe\u0301")

	assert.Equal(t, 5, r.Stats.Chars)
	assert.Equal(t, 4, r.Graphemes)
	require.Len(t, r.Warnings, 1)
	assert.Contains(t, r.Warnings[0], "5 characters render as 4")
}

func TestAnalyzeHotspotOrder(t *testing.T) {
	text := strings.Join([]string{"b", "a", "a", "b", "c", "a", "c"}, "\n")

	r := Analyze(text)

	require.Len(t, r.Hotspots, 3)
	assert.Equal(t, "a", r.Hotspots[0].Line)
	assert.Equal(t, 3, r.Hotspots[0].Count)
	// ties resolved by first occurrence
	assert.Equal(t, "b", r.Hotspots[1].Line)
	assert.Equal(t, "c", r.Hotspots[2].Line)
	assert.Equal(t, 4, r.DuplicateLines)
}

func TestAnalyzeHotspotCap(t *testing.T) {
	var lines []string
	for _, s := range []string{"a", "b", "c", "d", "e", "f", "g"} {
		lines = append(lines, s, s)
	}

	r := Analyze(strings.Join(lines, "\n"))

	assert.Len(t, r.Hotspots, maxHotspots)
	assert.Equal(t, 7, r.DuplicateLines)
}

func TestAnalyzeExampleDocument(t *testing.T) {
	r := Analyze(cleaner.Example(cleaner.DefaultExampleLines))

	assert.Equal(t, 123, r.Stats.Lines)
	assert.Positive(t, r.WhitespaceOnly)
	assert.Positive(t, r.DuplicateLines)
	require.NotEmpty(t, r.Hotspots)
	assert.Equal(t, "  ", r.Hotspots[0].Line)
}

func TestFormatReport(t *testing.T) {
	text := "x\nx\n\ny"
	_, stages := cleaner.ApplyOptionsReport(text, cleaner.TransformOptions{
		RemoveEmptyLines: true,
		RemoveDuplicates: true,
	})

	out := FormatReport(Analyze(text), stages, 1500*time.Microsecond)

	assert.True(t, strings.HasPrefix(out, "# Limpio Report"))
	assert.Contains(t, out, "| Lines | 4 |")
	assert.Contains(t, out, "| Duplicate Lines | 1 |")
	assert.Contains(t, out, "## Stages")
	assert.Contains(t, out, "| remove-empty | 4 | 3 | 1 |")
	assert.Contains(t, out, "| dedupe | 3 | 2 | 1 |")
	assert.Contains(t, out, "**Processed in:** 1.5ms")
	assert.Contains(t, out, "## Duplicate Hotspots")
	assert.Contains(t, out, "| `x` | 2 | 1 |")
	assert.NotContains(t, out, "## Warnings")
}

func TestFormatReportWithoutStages(t *testing.T) {
	out := FormatReport(Analyze("solo"), nil, 0)

	assert.Contains(t, out, "## Summary")
	assert.NotContains(t, out, "## Stages")
	assert.NotContains(t, out, "Processed in")
	assert.NotContains(t, out, "## Duplicate Hotspots")
}
