package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/raphi011/sortbench/internal/config"
	"github.com/raphi011/sortbench/internal/log"
	"github.com/raphi011/sortbench/internal/output"
	"github.com/raphi011/sortbench/internal/ui/styles"
)

var (
	// Global flags
	verbose bool
	quiet   bool
)

// Command group IDs for organizing help output
const (
	GroupCore   = "core"
	GroupConfig = "config"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "sortbench",
	Short: "Interactive launcher for sorting benchmarks",
	Long: `sortbench asks which sorting algorithm to benchmark and for which input
sizes, then starts the benchmark runner with those values.

All benchmark values are typed at the prompts; the config file only says
which runner to start and where the algorithm list comes from.`,
	SilenceUsage:               true,
	SilenceErrors:              true,
	SuggestionsMinimumDistance: 2,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "completion" || cmd.Name() == "__complete" || cmd.Name() == "help" {
			return nil
		}

		// Replace the bootstrap logger now that flags are parsed
		ctx := log.WithLogger(cmd.Context(), log.New(os.Stderr, verbose, quiet))
		cmd.SetContext(ctx)

		cfg := config.FromContext(ctx)
		log.FromContext(ctx).Debug("config loaded", "path", cfg.Path, "runner", cfg.Runner.Command, "registry", cfg.RegistryFile)
		return styles.Init(cfg.Theme)
	},
	// Run is not set - shows help when no subcommand provided
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	// Create context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	ctx = config.WithConfig(ctx, cfg)
	ctx = log.WithLogger(ctx, log.New(os.Stderr, false, false))
	ctx = output.WithPrinter(ctx, os.Stdout)

	rootCmd.SetContext(ctx)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Run 'sortbench -h' for help")
		os.Exit(1)
	}
}

// loadConfig loads the global config, merges .sortbench.toml from the
// working directory and applies env overrides last. Errors from one source
// do not discard the others; they are returned joined with the best-effort
// config.
func loadConfig() (*config.Config, error) {
	global, globalErr := config.LoadGlobal()

	var localErr error
	var local *config.LocalConfig
	workDir, err := os.Getwd()
	if err != nil {
		localErr = fmt.Errorf("failed to get working directory: %w", err)
	} else {
		local, localErr = config.LoadLocal(workDir)
	}

	cfg, envErr := config.ApplyEnv(*config.MergeLocal(&global, local))
	return &cfg, errors.Join(globalErr, localErr, envErr)
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show config details and the runner command line")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all log output")
	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	rootCmd.Version = versionString()
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	rootCmd.AddGroup(
		&cobra.Group{ID: GroupCore, Title: "Core Commands:"},
		&cobra.Group{ID: GroupConfig, Title: "Configuration Commands:"},
	)

	rootCmd.AddCommand(newRunCmd())
	rootCmd.AddCommand(newAlgorithmsCmd())
	rootCmd.AddCommand(newConfigCmd())
}
