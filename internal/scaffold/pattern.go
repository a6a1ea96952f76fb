package scaffold

import (
	"regexp"
	"strings"
)

// Pattern decides whether a template path is excluded from a copy.
// *regexp.Regexp satisfies it.
type Pattern interface {
	MatchString(s string) bool
}

// Literal matches any path containing it.
type Literal string

// MatchString reports whether s contains l.
func (l Literal) MatchString(s string) bool {
	return strings.Contains(s, string(l))
}

// MatchesPatterns reports whether any pattern matches text. Nil entries are
// skipped, and an empty set matches nothing.
//
// Patterns are searched for anywhere in text, which is the slash-separated
// path of an entry inside the template filesystem (for example
// "template-js/node_modules/react"). Anchor a pattern such as
// `(^|/)node_modules(/|$)` to match a whole path segment.
func MatchesPatterns(text string, patterns []Pattern) bool {
	for _, p := range patterns {
		if p == nil {
			continue
		}
		if re, ok := p.(*regexp.Regexp); ok && re == nil {
			continue
		}
		if p.MatchString(text) {
			return true
		}
	}
	return false
}

// ParsePatterns compiles each string as a regular expression. Strings that
// do not compile are kept as Literal patterns; empty strings are dropped
// because they would exclude everything.
func ParsePatterns(raw []string) []Pattern {
	patterns := make([]Pattern, 0, len(raw))
	for _, s := range raw {
		if s == "" {
			continue
		}
		re, err := regexp.Compile(s)
		if err != nil {
			patterns = append(patterns, Literal(s))
			continue
		}
		patterns = append(patterns, re)
	}
	return patterns
}
