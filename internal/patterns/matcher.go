package patterns

import (
	"fmt"
	"regexp"

	"github.com/xdg/skip-rm/internal/pathutil"
)

// Matcher is a compiled, immutable test of one pattern against a path.
// Create one with Compile.
type Matcher struct {
	kind    Kind
	pattern string         // source text as written in the list file
	origin  string         // "file:line", empty when compiled directly
	re      *regexp.Regexp // nil for KindString
}

// Compile builds a Matcher for pattern interpreted as kind.
//
// A glob has a leading ~ expanded to the home directory before translation.
// A string pattern is stored verbatim: neither ~ expansion nor absolutization
// is applied to it, so "~/.bashrc" or a relative path never matches.
// Glob and regex patterns are anchored so that only whole paths match. A
// regex is grouped before anchoring, as ^(?:pattern)$, so an alternation such
// as "/a|/b" matches exactly "/a" or "/b" and never a longer path that merely
// starts with "/a" or ends with "/b".
func Compile(kind Kind, pattern string) (*Matcher, error) {
	m := &Matcher{kind: kind, pattern: pattern}

	var expr string
	switch kind {
	case KindString:
		return m, nil
	case KindGlob:
		expr = "^" + GlobToRegex(pathutil.ExpandHome(pattern)) + "$"
	case KindRegex:
		expr = "^(?:" + pattern + ")$"
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, kind)
	}

	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("%w: %s %q: %v", ErrInvalidPattern, kind, pattern, err)
	}
	m.re = re
	return m, nil
}

// Kind returns the kind the matcher was compiled with.
func (m *Matcher) Kind() Kind { return m.kind }

// Pattern returns the pattern text as given to Compile.
func (m *Matcher) Pattern() string { return m.pattern }

// Origin returns "file:line" for matchers built from a list, or "".
func (m *Matcher) Origin() string { return m.origin }

// Expr returns the anchored regular expression, or "" for string matchers.
func (m *Matcher) Expr() string {
	if m.re == nil {
		return ""
	}
	return m.re.String()
}

// Match normalizes candidate to an absolute path and reports whether it
// matches. An error is returned only if the path cannot be absolutized.
func (m *Matcher) Match(candidate string) (bool, error) {
	abs, err := pathutil.Absolutize(candidate)
	if err != nil {
		return false, err
	}
	return m.MatchPath(abs), nil
}

// MatchPath reports whether an already normalized absolute path matches.
func (m *Matcher) MatchPath(abs string) bool {
	if m.kind == KindString {
		return abs == m.pattern
	}
	return m.re.MatchString(abs)
}

// String describes the matcher for log output.
func (m *Matcher) String() string {
	if m.origin != "" {
		return fmt.Sprintf("%s %q (%s)", m.kind, m.pattern, m.origin)
	}
	return fmt.Sprintf("%s %q", m.kind, m.pattern)
}
