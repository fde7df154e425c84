package cmd

import (
	"errors"
	"fmt"

	"github.com/xdg/skip-rm/internal/config"
	"github.com/xdg/skip-rm/internal/executor"
)

// ExitCodeError carries an exit status to main. Err, when set, is reported
// to the user before exiting.
type ExitCodeError struct {
	Code int
	Err  error
}

// NewExitCodeError returns an ExitCodeError with no message.
func NewExitCodeError(code int) *ExitCodeError {
	return &ExitCodeError{Code: code}
}

func (e *ExitCodeError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit code %d", e.Code)
}

func (e *ExitCodeError) Unwrap() error {
	return e.Err
}

// userError rewrites well-known setup failures into messages with a hint.
// Other errors are returned unchanged.
func userError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, config.ErrNoConfig):
		return fmt.Errorf("%w; create %s or %s (refusing to run without protection)",
			err, config.UserConfigPath(""), config.SystemConfigPath)
	case errors.Is(err, executor.ErrStart):
		return &ExitCodeError{Code: executor.ExitStartFailure, Err: err}
	default:
		return err
	}
}
