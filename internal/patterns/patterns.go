// Package patterns compiles protected-path patterns into matchers and tests
// command-line arguments against them.
//
// Three pattern kinds are supported:
//   - string: the argument's absolute path must equal the pattern exactly
//   - glob: shell-style glob translated to an anchored regular expression
//   - regex: regular expression anchored at both ends
//
// Candidates are always normalized with pathutil.Absolutize before matching,
// so relative arguments are compared by their absolute location.
package patterns

import (
	"errors"
	"fmt"
)

// Sentinel errors for pattern compilation.
var (
	// ErrUnknownKind indicates a matcher kind other than string, glob or regex.
	ErrUnknownKind = errors.New("unknown matcher kind")
	// ErrInvalidPattern indicates a pattern that does not compile to a valid
	// regular expression.
	ErrInvalidPattern = errors.New("invalid pattern")
)

// Kind selects how pattern text is interpreted.
type Kind int

const (
	// KindString compares the absolute candidate path to the pattern text.
	KindString Kind = iota
	// KindGlob translates the pattern with GlobToRegex.
	KindGlob
	// KindRegex uses the pattern as a regular expression.
	KindRegex
)

// String returns the config spelling of the kind.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindGlob:
		return "glob"
	case KindRegex:
		return "regex"
	default:
		return "unknown"
	}
}

// ParseKind parses the config spelling of a matcher kind. Matching is
// case-sensitive, as in the config file.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "string":
		return KindString, nil
	case "glob":
		return KindGlob, nil
	case "regex":
		return KindRegex, nil
	default:
		return 0, fmt.Errorf("%w: %q (want string, glob or regex)", ErrUnknownKind, s)
	}
}
