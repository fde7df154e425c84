// Package cmd implements the skip-rm command line.
package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xdg/skip-rm/internal/clog"
	"github.com/xdg/skip-rm/internal/config"
	"github.com/xdg/skip-rm/internal/executor"
	"github.com/xdg/skip-rm/internal/filter"
	"github.com/xdg/skip-rm/internal/patterns"
	"github.com/xdg/skip-rm/internal/term"
	"github.com/xdg/skip-rm/internal/version"
)

// newExecutor is replaced in tests.
var newExecutor = func() executor.Executor { return executor.NewRealExecutor() }

// rootCmd is the whole wrapper: every argument, flags included, belongs to
// the wrapped command, so cobra's flag parsing is disabled.
var rootCmd = &cobra.Command{
	Use:   "skip-rm [arguments for the wrapped command]",
	Short: "Run rm without touching protected paths",
	Long: `skip-rm wraps a destructive command such as rm. Every path argument is
checked against a list of protected patterns before the real command runs;
protected paths are dropped from the argument list and reported as
"skipping <path>...".

Configuration is read from $SKIP_RM_CONFIG, ~/.config/skip-rm/skip-rm.conf
or /etc/skip-rm/skip-rm.conf, whichever is found first.`,
	Args:               cobra.ArbitraryArgs,
	DisableFlagParsing: true,
	SilenceErrors:      true,
	SilenceUsage:       true,
	CompletionOptions:  cobra.CompletionOptions{DisableDefaultCmd: true},
	RunE:               runWrapper,
}

// Execute runs the wrapper with args, normally os.Args[1:].
func Execute(args []string) error {
	if args == nil {
		args = []string{}
	}
	if reservedByCobra(args) {
		if rootCmd.Context() == nil {
			rootCmd.SetContext(context.Background())
		}
		return userError(runWrapper(rootCmd, args))
	}
	rootCmd.SetArgs(args)
	return userError(rootCmd.Execute())
}

// reservedByCobra reports whether cobra would route args to its hidden
// completion commands instead of the root command.
func reservedByCobra(args []string) bool {
	if len(args) == 0 {
		return false
	}
	return args[0] == cobra.ShellCompRequestCmd || args[0] == cobra.ShellCompNoDescRequestCmd
}

func runWrapper(cmd *cobra.Command, args []string) error {
	env := config.LoadEnv()
	if env.Debug {
		clog.SetLevel(clog.LevelDebug)
	}

	cfg, path, err := config.Load(env)
	if err != nil {
		return err
	}
	if err := configureLogging(cfg.Log, env); err != nil {
		return err
	}
	defer func() { _ = clog.Close() }()

	clog.Debug("skip-rm %s, config %s", version.Version, path)
	if data, err := config.Marshal(cfg); err == nil {
		clog.Debug("effective config:\n%s", data)
	}

	kind, err := cfg.MatcherKind()
	if err != nil {
		return err
	}
	mode, err := cfg.FilterMode()
	if err != nil {
		return err
	}

	list, err := patterns.LoadList(kind, cfg.ListPath())
	if err != nil {
		return fmt.Errorf("load %s: %w", mode, err)
	}
	clog.Debug("loaded %d %s patterns from %s", len(list), kind, cfg.ListPath())

	forward, err := filter.New(mode, list, term.Skipping).Apply(args)
	if err != nil {
		return err
	}

	code, err := newExecutor().Run(cmd.Context(), executor.Request{
		Command: cfg.Command,
		Args:    forward,
		Stdin:   cmd.InOrStdin(),
		Stdout:  cmd.OutOrStdout(),
		Stderr:  cmd.ErrOrStderr(),
	})
	if err != nil {
		return err
	}
	if code != 0 {
		return NewExitCodeError(code)
	}
	return nil
}

// configureLogging applies the log section of the config. SKIP_RM_DEBUG
// overrides the configured level.
func configureLogging(lc config.LogConfig, env config.Env) error {
	level, err := clog.ParseLevel(lc.Level)
	if err != nil {
		return err
	}
	if env.Debug {
		level = clog.LevelDebug
	}
	if err := clog.Configure(level, lc.File); err != nil {
		return fmt.Errorf("configure logging: %w", err)
	}
	return nil
}
