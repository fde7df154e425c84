package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/xdg/skip-rm/internal/clog"
	"github.com/xdg/skip-rm/internal/pathutil"
)

// ErrNoConfig indicates that none of the candidate config files could be read.
var ErrNoConfig = errors.New("no config file")

// Load reads the first readable file from CandidatePaths(env), parses and
// validates it, and returns it with the path it came from. Files that cannot
// be read are skipped; a readable file that fails to parse or validate is an
// error, not a reason to fall through to the next candidate.
// Paths containing ~ are expanded to the home directory.
func Load(env Env) (*Config, string, error) {
	paths := CandidatePaths(env)
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				clog.Debug("config: skipping %s: %v", path, err)
			} else {
				clog.Warn("config: skipping unreadable %s: %v", path, err)
			}
			continue
		}

		cfg, err := Parse(data)
		if err != nil {
			return nil, path, fmt.Errorf("load config %s: %w", path, err)
		}
		if err := Validate(cfg); err != nil {
			return nil, path, fmt.Errorf("load config %s: %w", path, err)
		}

		expandPaths(cfg)
		clog.Info("config: loaded %s", path)
		return cfg, path, nil
	}
	return nil, "", fmt.Errorf("%w (tried %s)", ErrNoConfig, strings.Join(paths, ", "))
}

// expandPaths expands ~ in the list and log file paths.
func expandPaths(cfg *Config) {
	cfg.Blacklist = pathutil.ExpandHome(cfg.Blacklist)
	cfg.Whitelist = pathutil.ExpandHome(cfg.Whitelist)
	cfg.Log.File = pathutil.ExpandHome(cfg.Log.File)
}
