package config

import (
	"errors"
	"fmt"

	"github.com/xdg/skip-rm/internal/clog"
)

// ErrInvalidConfig indicates a config file that parsed but is unusable.
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks that cfg can drive a run:
//   - command is non-empty
//   - matcher is string, glob or regex
//   - mode is blacklist or whitelist
//   - the list file selected by mode is non-empty
//   - log.level, if set, is a known level
func Validate(cfg *Config) error {
	if cfg.Command == "" {
		return fmt.Errorf("%w: command: must not be empty", ErrInvalidConfig)
	}
	if _, err := cfg.MatcherKind(); err != nil {
		return fmt.Errorf("%w: matcher: %w", ErrInvalidConfig, err)
	}
	if _, err := cfg.FilterMode(); err != nil {
		return fmt.Errorf("%w: mode: %w", ErrInvalidConfig, err)
	}
	if cfg.ListPath() == "" {
		return fmt.Errorf("%w: %s: list file must be set in %s mode", ErrInvalidConfig, cfg.Mode, cfg.Mode)
	}
	if _, err := clog.ParseLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level: %w", ErrInvalidConfig, err)
	}
	return nil
}
