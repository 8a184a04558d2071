// Package cli provides the command-line interface for devfolio.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jask/devfolio/internal/config"
	"github.com/jask/devfolio/internal/logging"
)

// Version information (set at build time).
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
)

// flags holds the persistent flag values of one root command.
type flags struct {
	configPath string
	logFile    string
	logLevel   string
}

// env is what PersistentPreRunE hands to subcommands through the context.
type env struct {
	cfg     config.Config
	log     *zap.Logger
	session string
}

type envKey struct{}

// NewRootCmd creates and returns the root command. Without a subcommand it
// runs the interactive workbench.
func NewRootCmd() *cobra.Command {
	f := &flags{}

	rootCmd := &cobra.Command{
		Use:   "devfolio",
		Short: "devfolio - a portfolio that looks like an editor",
		Long: `devfolio renders a developer portfolio as an IDE-styled terminal UI:
file explorer, editor tabs with syntax highlighting, a bottom panel and an
assistant side panel.

Configuration is read from --config, $DEVFOLIO_CONFIG or the user config
directory. Every key can be overridden with DEVFOLIO_<SECTION>_<KEY>.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip config loading for help and completion commands
			if skipSetup(cmd) {
				return nil
			}
			e, err := setup(f)
			if err != nil {
				return err
			}
			cmd.SetContext(context.WithValue(cmd.Context(), envKey{}, e))
			e.log.Debug("command started", zap.String("command", cmd.CommandPath()))
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, _ []string) {
			if e, ok := cmd.Context().Value(envKey{}).(*env); ok {
				_ = e.log.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runWorkbench(cmd)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate(`{{.Name}} {{.Version}}
`)

	rootCmd.PersistentFlags().StringVar(&f.configPath, "config", "", "config file (default: $DEVFOLIO_CONFIG or the user config dir)")
	rootCmd.PersistentFlags().StringVar(&f.logFile, "log-file", "", "write logs to this file (overrides log.path)")
	rootCmd.PersistentFlags().StringVar(&f.logLevel, "log-level", "", "log level: debug, info, warn, error (overrides log.level)")

	_ = rootCmd.RegisterFlagCompletionFunc("log-level", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"debug", "info", "warn", "error"}, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(newSnapshotCommand())
	rootCmd.AddCommand(newShowCommand())
	rootCmd.AddCommand(newListCommand())
	rootCmd.AddCommand(newConfigCommand(f))
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

func skipSetup(cmd *cobra.Command) bool {
	switch cmd.Name() {
	case "help", "completion", "__complete", "version", "init", "path":
		return true
	}
	return false
}

func setup(f *flags) (*env, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return nil, err
	}
	if f.logFile != "" {
		cfg.Log.Path = f.logFile
	}
	if f.logLevel != "" {
		cfg.Log.Level = f.logLevel
	}

	logger, err := logging.New(logging.Config{
		Level:       cfg.Log.Level,
		Development: cfg.Log.Development,
		Path:        cfg.Log.Path,
	})
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	logger, session := logging.WithSession(logger)
	return &env{cfg: cfg, log: logger, session: session}, nil
}

// envFrom returns the environment set up by the root command, or defaults
// when a subcommand runs without it.
func envFrom(ctx context.Context) *env {
	if ctx != nil {
		if e, ok := ctx.Value(envKey{}).(*env); ok {
			return e
		}
	}
	return &env{cfg: config.Default(), log: zap.NewNop()}
}
