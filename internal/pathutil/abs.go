package pathutil

import (
	"fmt"
	"path/filepath"
)

// Absolutize returns the absolute, lexically cleaned form of path. Relative
// paths are resolved against the current working directory and "." / ".."
// elements are collapsed without touching the filesystem, so symlinks are
// never followed and the path does not need to exist.
func Absolutize(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("absolutize %q: %w", path, err)
	}
	return abs, nil
}
