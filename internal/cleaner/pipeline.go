package cleaner

// TransformOptions toggles the stages of ApplyOptions. Any subset may be on.
type TransformOptions struct {
	TrimLines        bool `json:"trim_lines" yaml:"trim_lines"`
	RemoveEmptyLines bool `json:"remove_empty_lines" yaml:"remove_empty_lines"`
	RemoveDuplicates bool `json:"remove_duplicates" yaml:"remove_duplicates"`
}

// Any reports whether at least one stage is enabled.
func (o TransformOptions) Any() bool {
	return o.TrimLines || o.RemoveEmptyLines || o.RemoveDuplicates
}

// Stage names one step of the ApplyOptions pipeline.
type Stage string

const (
	StageTrim        Stage = "trim"
	StageRemoveEmpty Stage = "remove-empty"
	StageDedupe      Stage = "dedupe"
)

// StageResult records the line counts around a stage that ran.
type StageResult struct {
	Stage    Stage `json:"stage"`
	LinesIn  int   `json:"lines_in"`
	LinesOut int   `json:"lines_out"`
}

// Removed is the number of lines the stage dropped.
func (r StageResult) Removed() int {
	return r.LinesIn - r.LinesOut
}

// Clear returns the empty document.
func Clear(string) string {
	return ""
}

// RemoveMatching drops every line selected by spec. A blank pattern returns
// the text unchanged.
func RemoveMatching(text string, spec MatchSpec) string {
	m := spec.Matcher()
	if m.Mode == MatchNone {
		return text
	}
	return Join(filterLines(Lines(text), func(ln string) bool {
		return !m.Match(ln)
	}))
}

// RemoveDuplicates keeps the first occurrence of each exact line value.
func RemoveDuplicates(text string) string {
	return Join(dedupe(Lines(text)))
}

func dedupe(lines []string) []string {
	seen := make(map[string]struct{}, len(lines))
	return filterLines(lines, func(ln string) bool {
		if _, ok := seen[ln]; ok {
			return false
		}
		seen[ln] = struct{}{}
		return true
	})
}

// ApplyOptions runs the enabled stages in the fixed order trim, remove-empty,
// dedupe. Each stage sees the output of the previous one, so whitespace-only
// lines are only dropped as empty when trimming is on.
func ApplyOptions(text string, opts TransformOptions) string {
	out, _ := ApplyOptionsReport(text, opts)
	return out
}

// ApplyOptionsReport is ApplyOptions plus the line counts of every stage
// that ran.
func ApplyOptionsReport(text string, opts TransformOptions) (string, []StageResult) {
	if !opts.Any() {
		return text, nil
	}

	lines := Lines(text)
	var stages []StageResult

	if opts.TrimLines {
		for i, ln := range lines {
			lines[i] = TrimLine(ln)
		}
		stages = append(stages, StageResult{Stage: StageTrim, LinesIn: len(lines), LinesOut: len(lines)})
	}

	if opts.RemoveEmptyLines {
		in := len(lines)
		lines = filterLines(lines, func(ln string) bool { return ln != "" })
		stages = append(stages, StageResult{Stage: StageRemoveEmpty, LinesIn: in, LinesOut: len(lines)})
	}

	if opts.RemoveDuplicates {
		in := len(lines)
		lines = dedupe(lines)
		stages = append(stages, StageResult{Stage: StageDedupe, LinesIn: in, LinesOut: len(lines)})
	}

	return Join(lines), stages
}

// RemoveSelection deletes the code point range [start, end) from the flat
// text. Offsets are clamped into the text and swapped when reversed.
func RemoveSelection(text string, start, end int) string {
	if start == end {
		return text
	}

	runes := []rune(text)
	start = clamp(start, 0, len(runes))
	end = clamp(end, 0, len(runes))
	if start > end {
		start, end = end, start
	}
	if start == end {
		return text
	}

	return string(runes[:start]) + string(runes[end:])
}

func clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
