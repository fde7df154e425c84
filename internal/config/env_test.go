package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadEnv(t *testing.T) {
	t.Setenv("SKIP_RM_CONFIG", "/tmp/skip-rm.conf")
	t.Setenv("SKIP_RM_DEBUG", "true")
	t.Setenv("XDG_CONFIG_HOME", "/xdg")

	env := LoadEnv()
	assert.Equal(t, "/tmp/skip-rm.conf", env.ConfigPath)
	assert.True(t, env.Debug)
	assert.Equal(t, "/xdg", env.ConfigHome)
}

func TestLoadEnv_Unset(t *testing.T) {
	t.Setenv("SKIP_RM_CONFIG", "")
	t.Setenv("SKIP_RM_DEBUG", "")
	t.Setenv("XDG_CONFIG_HOME", "")

	env := LoadEnv()
	assert.Equal(t, Env{}, env)
}

func TestLoadEnv_DebugValues(t *testing.T) {
	tests := map[string]bool{"1": true, "true": true, "0": false, "false": false, "yes": false}
	for val, want := range tests {
		t.Run(val, func(t *testing.T) {
			t.Setenv("SKIP_RM_DEBUG", val)
			assert.Equal(t, want, LoadEnv().Debug)
		})
	}
}
