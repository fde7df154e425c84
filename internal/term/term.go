// Package term provides user-facing terminal output for skip-rm.
// This is distinct from operational logging (see internal/clog).
//
// Everything skip-rm says to the user goes to stderr so that the wrapped
// command keeps sole ownership of stdout.
package term

import (
	"fmt"
	"io"
	"os"
	"sync"
)

var (
	mu     sync.Mutex
	stderr io.Writer = os.Stderr
)

// SetErrOutput sets the writer for user-facing output.
// Pass nil to use os.Stderr.
func SetErrOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	if w == nil {
		stderr = os.Stderr
	} else {
		stderr = w
	}
}

// Skipping reports an argument that was withheld from the wrapped command.
func Skipping(arg string) {
	mu.Lock()
	defer mu.Unlock()
	_, _ = fmt.Fprintf(stderr, "skipping %s...\n", arg)
}

// Error writes a fatal error message prefixed with the program name.
func Error(format string, a ...any) {
	mu.Lock()
	defer mu.Unlock()
	msg := fmt.Sprintf(format, a...)
	_, _ = fmt.Fprintf(stderr, "skip-rm: %s\n", msg)
}

// Stderr returns the current output writer.
func Stderr() io.Writer {
	mu.Lock()
	defer mu.Unlock()
	return stderr
}

// Reset restores os.Stderr. Primarily useful for testing.
func Reset() {
	SetErrOutput(nil)
}
