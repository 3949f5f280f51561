package cmd

import (
	"fmt"
	"os"

	"splitnest-cli/core/config"
	"splitnest-cli/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	workDir string
	verbose bool
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "splitnest",
	Short: "SplitNest developer tooling",
	Long: `Operator tools for a local SplitNest checkout.
"setup" writes .env.local with a generated secret, "test-db" verifies that the
configured MongoDB is reachable and writable.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Use the application's standard logger for error reporting
		// We default to console format to match user expectations (CLI tool)
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			// Absolute fallback if logger creation fails (rare)
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().StringVar(&workDir, "dir", ".", "Directory containing .env.local")
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging on stderr")
}

// loadRuntime loads configuration for dir and builds the command logger.
func loadRuntime(command string) (*config.Config, *zap.Logger, error) {
	cfg, err := config.LoadConfig(workDir)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	if verbose {
		cfg.Log.Level = "debug"
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create logger: %w", err)
	}
	logg = logger.WithCommand(logg, command)
	logg.Debug("configuration loaded",
		zap.String("env_path", cfg.EnvPath),
		zap.Bool("env_found", cfg.EnvFound),
		zap.Strings("env_keys", cfg.Env.Keys()),
	)

	return cfg, logg, nil
}
