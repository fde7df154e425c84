package executor

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireShell(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
}

func TestRealExecutor_ImplementsExecutor(t *testing.T) {
	var _ Executor = (*RealExecutor)(nil)
}

func TestRealExecutor_ExitStatus(t *testing.T) {
	requireShell(t)

	tests := []struct {
		name   string
		script string
		want   int
	}{
		{"success", "exit 0", 0},
		{"failure", "exit 1", 1},
		{"custom status", "exit 3", 3},
		{"killed by signal", "kill -TERM $$", 143},
	}

	e := NewRealExecutor()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, err := e.Run(context.Background(), Request{
				Command: "sh",
				Args:    []string{"-c", tt.script},
			})
			require.NoError(t, err)
			assert.Equal(t, tt.want, code)
		})
	}
}

func TestRealExecutor_ForwardsArgsAndStreams(t *testing.T) {
	requireShell(t)

	var stdout, stderr bytes.Buffer
	code, err := NewRealExecutor().Run(context.Background(), Request{
		Command: "sh",
		Args:    []string{"-c", `read line; printf '%s|' "$@" "$line"; echo oops >&2`, "sh", "-rf", "--", "a b"},
		Stdin:   strings.NewReader("from stdin\n"),
		Stdout:  &stdout,
		Stderr:  &stderr,
	})
	require.NoError(t, err)
	assert.Equal(t, 0, code)
	assert.Equal(t, "-rf|--|a b|from stdin|", stdout.String())
	assert.Equal(t, "oops\n", stderr.String())
}

func TestRealExecutor_NotFound(t *testing.T) {
	code, err := NewRealExecutor().Run(context.Background(), Request{
		Command: "skip-rm-test-no-such-command",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrStart))
	assert.Equal(t, ExitStartFailure, code)
	assert.Contains(t, err.Error(), "skip-rm-test-no-such-command")
}

func TestRealExecutor_NotExecutable(t *testing.T) {
	code, err := NewRealExecutor().Run(context.Background(), Request{
		Command: t.TempDir(),
	})
	assert.True(t, errors.Is(err, ErrStart), "error = %v", err)
	assert.Equal(t, ExitStartFailure, code)
}
