package config

import (
	"path/filepath"

	"github.com/xdg/skip-rm/internal/pathutil"
)

// SystemConfigPath is the system-wide config file, consulted last.
const SystemConfigPath = "/etc/skip-rm/skip-rm.conf"

// UserConfigPath returns the per-user config file path. By default this is
// ~/.config/skip-rm/skip-rm.conf; a non-empty configHome (XDG_CONFIG_HOME)
// replaces ~/.config.
func UserConfigPath(configHome string) string {
	if configHome == "" {
		configHome = "~/.config"
	}
	return filepath.Join(pathutil.ExpandHome(configHome), "skip-rm", "skip-rm.conf")
}

// CandidatePaths returns the config files to try, in order. An explicit
// SKIP_RM_CONFIG is the only candidate when set.
func CandidatePaths(env Env) []string {
	if env.ConfigPath != "" {
		return []string{pathutil.ExpandHome(env.ConfigPath)}
	}
	return []string{UserConfigPath(env.ConfigHome), SystemConfigPath}
}
