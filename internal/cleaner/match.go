package cleaner

import (
	"regexp"
	"strings"

	"github.com/Mr-Dark-debug/limpio/internal/logging"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// MatchSpec selects lines by literal substring or regular expression.
type MatchSpec struct {
	Pattern  string `json:"pattern"`
	UseRegex bool   `json:"use_regex"`
}

// MatchMode is the resolved kind of a MatchSpec.
type MatchMode int

const (
	MatchNone MatchMode = iota
	MatchLiteral
	MatchRegex
)

func (m MatchMode) String() string {
	switch m {
	case MatchLiteral:
		return "literal"
	case MatchRegex:
		return "regex"
	default:
		return "none"
	}
}

// Matcher is a MatchSpec resolved into a single predicate over a line.
type Matcher struct {
	Mode  MatchMode
	match func(line string) bool
}

// Match reports whether line is selected. A MatchNone matcher selects nothing.
func (m Matcher) Match(line string) bool {
	if m.match == nil {
		return false
	}
	return m.match(line)
}

// IsEmpty reports whether the pattern is blank, which turns matching
// operations into identity transforms.
func (s MatchSpec) IsEmpty() bool {
	return strings.TrimSpace(s.Pattern) == ""
}

// Matcher resolves the spec. Regex patterns are compiled case-insensitively;
// a pattern that does not compile degrades to the literal matcher.
func (s MatchSpec) Matcher() Matcher {
	if s.IsEmpty() {
		return Matcher{Mode: MatchNone}
	}

	if s.UseRegex {
		re, err := regexp.Compile("(?i)" + s.Pattern)
		if err == nil {
			return Matcher{Mode: MatchRegex, match: re.MatchString}
		}
		logging.Component("cleaner").Debug().
			Err(err).
			Str("pattern", s.Pattern).
			Msg("invalid regex, falling back to literal match")
	}

	return literalMatcher(s.Pattern)
}

func literalMatcher(pattern string) Matcher {
	lower := cases.Lower(language.Und)
	needle := lower.String(pattern)
	return Matcher{
		Mode: MatchLiteral,
		match: func(line string) bool {
			return strings.Contains(lower.String(line), needle)
		},
	}
}
