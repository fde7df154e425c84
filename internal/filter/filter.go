// Package filter decides which command-line arguments are forwarded to the
// wrapped command.
//
// Each argument is classified before any pattern is consulted:
//   - "-" is always tested
//   - "--" is always forwarded and marks the end of options
//   - other tokens starting with "-" are flags and are forwarded untested,
//     unless they follow "--"
//   - everything else is treated as a path and tested
//
// A tested argument is then kept or skipped according to the Mode.
package filter

import (
	"errors"
	"fmt"
	"strings"

	"github.com/xdg/skip-rm/internal/clog"
	"github.com/xdg/skip-rm/internal/patterns"
)

// ErrUnknownMode indicates a mode other than blacklist or whitelist.
var ErrUnknownMode = errors.New("unknown mode")

// Mode selects how a pattern match is interpreted.
type Mode int

const (
	// Blacklist skips arguments that match any pattern.
	Blacklist Mode = iota
	// Whitelist skips arguments that match no pattern.
	Whitelist
)

// String returns the config spelling of the mode.
func (m Mode) String() string {
	switch m {
	case Blacklist:
		return "blacklist"
	case Whitelist:
		return "whitelist"
	default:
		return "unknown"
	}
}

// ParseMode parses the config spelling of a mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "blacklist":
		return Blacklist, nil
	case "whitelist":
		return Whitelist, nil
	default:
		return 0, fmt.Errorf("%w: %q (want blacklist or whitelist)", ErrUnknownMode, s)
	}
}

// Matcher finds the pattern accepting a candidate path. patterns.List
// implements it.
type Matcher interface {
	Match(candidate string) (*patterns.Matcher, error)
}

// Filter applies one mode and one pattern list to argument vectors.
type Filter struct {
	mode Mode
	list Matcher
	skip func(arg string)
}

// New creates a Filter. skip is called once for every withheld argument;
// it may be nil.
func New(mode Mode, list Matcher, skip func(arg string)) *Filter {
	if skip == nil {
		skip = func(string) {}
	}
	return &Filter{mode: mode, list: list, skip: skip}
}

// Apply returns the arguments to forward, in their original order. args
// must not include the program name. An error means a candidate could not
// be normalized; no partial result is returned in that case.
func (f *Filter) Apply(args []string) ([]string, error) {
	out := make([]string, 0, len(args))
	endOfOptions := false

	for _, arg := range args {
		tested := true
		switch {
		case arg == "-":
		case arg == "--":
			endOfOptions = true
			tested = false
		case strings.HasPrefix(arg, "-"):
			tested = endOfOptions
		}

		if !tested {
			clog.Debug("filter: pass %q (not a path)", arg)
			out = append(out, arg)
			continue
		}

		keep, err := f.keep(arg)
		if err != nil {
			return nil, fmt.Errorf("filter %q: %w", arg, err)
		}
		if !keep {
			f.skip(arg)
			continue
		}
		out = append(out, arg)
	}
	return out, nil
}

// keep tests one argument against the list under the filter's mode.
func (f *Filter) keep(arg string) (bool, error) {
	m, err := f.list.Match(arg)
	if err != nil {
		return false, err
	}

	switch f.mode {
	case Blacklist:
		if m != nil {
			clog.Debug("filter: skip %q (blacklisted by %s)", arg, m)
			return false, nil
		}
		clog.Debug("filter: keep %q", arg)
		return true, nil
	case Whitelist:
		if m == nil {
			clog.Debug("filter: skip %q (not whitelisted)", arg)
			return false, nil
		}
		clog.Debug("filter: keep %q (whitelisted by %s)", arg, m)
		return true, nil
	default:
		return false, fmt.Errorf("%w: %d", ErrUnknownMode, f.mode)
	}
}
