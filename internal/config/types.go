// Package config provides the skip-rm configuration record and its loading
// from the user or system config file.
package config

import (
	"github.com/xdg/skip-rm/internal/filter"
	"github.com/xdg/skip-rm/internal/patterns"
)

// Config is the configuration for one skip-rm run. It is immutable after
// Load returns.
//
// The file is YAML; JSON documents are valid YAML, so a file such as
//
//	{"command": "rm", "matcher": "glob", "mode": "blacklist",
//	 "blacklist": "~/.config/skip-rm/blacklist", "whitelist": ""}
//
// is accepted as-is.
type Config struct {
	// Command is the wrapped executable, looked up in PATH if not a path.
	Command string `yaml:"command"`

	// Matcher is one of "string", "glob" or "regex".
	Matcher string `yaml:"matcher"`

	// Mode is "blacklist" or "whitelist" and selects which list file is used.
	Mode string `yaml:"mode"`

	// Blacklist is the list file used in blacklist mode.
	Blacklist string `yaml:"blacklist"`

	// Whitelist is the list file used in whitelist mode.
	Whitelist string `yaml:"whitelist"`

	Log LogConfig `yaml:"log,omitempty"`
}

// LogConfig contains optional operational logging settings.
type LogConfig struct {
	Level string `yaml:"level,omitempty"`
	File  string `yaml:"file,omitempty"`
}

// MatcherKind returns the parsed Matcher field.
func (c *Config) MatcherKind() (patterns.Kind, error) {
	return patterns.ParseKind(c.Matcher)
}

// FilterMode returns the parsed Mode field.
func (c *Config) FilterMode() (filter.Mode, error) {
	return filter.ParseMode(c.Mode)
}

// ListPath returns the list file selected by Mode, or "" if Mode is invalid.
func (c *Config) ListPath() string {
	switch c.Mode {
	case "blacklist":
		return c.Blacklist
	case "whitelist":
		return c.Whitelist
	default:
		return ""
	}
}
