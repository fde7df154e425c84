// Package executor runs the wrapped command with the filtered arguments.
package executor

import (
	"context"
	"errors"
	"io"
)

// ExitStartFailure is the exit status used when the wrapped command could
// not be started at all, following the shell's "command not found" status.
const ExitStartFailure = 127

// ErrStart indicates the command was never started, as opposed to running
// and exiting non-zero.
var ErrStart = errors.New("cannot start command")

// Executor runs a command to completion and reports its exit status.
type Executor interface {
	Run(ctx context.Context, req Request) (int, error)
}

// Request describes one command invocation. Nil streams are connected to
// the null device.
type Request struct {
	Command string
	Args    []string
	Stdin   io.Reader
	Stdout  io.Writer
	Stderr  io.Writer
}
