// Package pathutil provides path manipulation utilities shared by the config
// loader and the pattern matchers.
package pathutil

import (
	"os"
	"path/filepath"
	"strings"
)

// ExpandHome replaces a leading ~ in path with the current user's home
// directory. Only the bare "~" and the "~/" prefix are recognized; "~other"
// forms are returned unchanged. If the home directory cannot be determined,
// the path is returned unchanged.
func ExpandHome(path string) string {
	rest, ok := strings.CutPrefix(path, "~")
	if !ok || (rest != "" && rest[0] != '/') {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	if rest == "" {
		return home
	}
	return filepath.Join(home, rest[1:])
}
