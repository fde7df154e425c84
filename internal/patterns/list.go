package patterns

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/xdg/skip-rm/internal/clog"
	"github.com/xdg/skip-rm/internal/pathutil"
)

// maxLineBytes bounds a single pattern line.
const maxLineBytes = 1 << 20

// List is an ordered collection of matchers. A candidate matches the list if
// it matches any member.
type List []*Matcher

// Match normalizes candidate once and returns the first matcher that accepts
// it, or nil if none does.
func (l List) Match(candidate string) (*Matcher, error) {
	abs, err := pathutil.Absolutize(candidate)
	if err != nil {
		return nil, err
	}
	for _, m := range l {
		if m.MatchPath(abs) {
			return m, nil
		}
	}
	return nil, nil
}

// LoadList reads the list file at path (with ~ expanded) and compiles one
// matcher per line. A missing or unreadable file is an error.
func LoadList(kind Kind, path string) (List, error) {
	path = pathutil.ExpandHome(path)
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open list file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return ParseList(kind, f, path)
}

// ParseList compiles one matcher per line read from r. Lines are used
// exactly as read apart from the line terminator; blank lines and lines
// starting with "#" are patterns like any other. source names r in errors
// and in each matcher's Origin.
func ParseList(kind Kind, r io.Reader, source string) (List, error) {
	var list List
	scan := bufio.NewScanner(r)
	scan.Buffer(make([]byte, 0, 4096), maxLineBytes)

	line := 0
	for scan.Scan() {
		line++
		m, err := Compile(kind, scan.Text())
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", source, line, err)
		}
		m.origin = fmt.Sprintf("%s:%d", source, line)
		clog.Debug("patterns: compiled %s", m)
		list = append(list, m)
	}
	if err := scan.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", source, err)
	}
	return list, nil
}
