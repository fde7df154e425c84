package executor

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"syscall"

	"github.com/xdg/skip-rm/internal/clog"
)

// RealExecutor executes commands using os/exec.
type RealExecutor struct{}

// NewRealExecutor creates a new RealExecutor.
func NewRealExecutor() *RealExecutor {
	return &RealExecutor{}
}

// Run starts the command, waits for it and returns its exit status. A
// non-zero status is not an error. A command killed by a signal reports
// 128 plus the signal number. If the command cannot be started, Run returns
// ExitStartFailure and an error wrapping ErrStart.
func (e *RealExecutor) Run(ctx context.Context, req Request) (int, error) {
	cmd := exec.CommandContext(ctx, req.Command, req.Args...)
	cmd.Stdin = req.Stdin
	cmd.Stdout = req.Stdout
	cmd.Stderr = req.Stderr

	clog.Debug("executor: running %s %q", req.Command, req.Args)
	err := cmd.Run()
	if err == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code := exitErr.ExitCode()
		if ws, ok := exitErr.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
			code = 128 + int(ws.Signal())
		}
		clog.Debug("executor: %s exited with status %d", req.Command, code)
		return code, nil
	}

	return ExitStartFailure, fmt.Errorf("%w %q: %w", ErrStart, req.Command, err)
}
