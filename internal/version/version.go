// Package version provides version information for skip-rm.
// The Version variable is set at build time via ldflags.
package version

// Version is the current version of skip-rm.
// Set at build time via: -ldflags "-X github.com/xdg/skip-rm/internal/version.Version=v1.0.0"
// Defaults to "dev" for development builds.
var Version = "dev"
