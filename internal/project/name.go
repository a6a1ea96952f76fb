package project

import (
	"regexp"
	"strings"
	"unicode"
)

// PackageNamePattern is the npm package name grammar: an optional
// "@scope/" prefix followed by a name segment.
var PackageNamePattern = regexp.MustCompile(`^(?:@[a-z0-9\-*~][a-z0-9\-*._~]*/)?[a-z0-9\-~][a-z0-9\-._~]*$`)

var (
	whitespaceRun   = regexp.MustCompile(`\s+`)
	leadingDotOrUnd = regexp.MustCompile(`^[._]`)
	invalidNameRun  = regexp.MustCompile(`[^a-z0-9\-~]+`)
)

// FormatTargetDir trims surrounding whitespace and every trailing "/" from
// raw. Empty input, or input made only of slashes and spaces, yields "".
func FormatTargetDir(raw string) string {
	return strings.TrimRightFunc(strings.TrimSpace(raw), func(r rune) bool {
		return r == '/' || unicode.IsSpace(r)
	})
}

// IsValidPackageName reports whether name can be used verbatim as the
// package.json name.
func IsValidPackageName(name string) bool {
	return PackageNamePattern.MatchString(name)
}

// ToValidPackageName derives a package name from arbitrary input. The result
// is always a plain (unscoped) segment, and applying it twice gives the same
// result as applying it once.
func ToValidPackageName(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = whitespaceRun.ReplaceAllString(s, "-")
	s = leadingDotOrUnd.ReplaceAllString(s, "")
	return invalidNameRun.ReplaceAllString(s, "-")
}
