package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/raphi011/sortbench/internal/config"
	"github.com/raphi011/sortbench/internal/output"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Short:   "Manage configuration",
		Aliases: []string{"cfg"},
		GroupID: GroupConfig,
		Long: `Manage sortbench configuration.

Global config: ~/.config/sortbench/config.toml (or $SORTBENCH_CONFIG)
Local config:  .sortbench.toml (in the working directory)`,
		Example: `  sortbench config init          # Create default global config
  sortbench config init --local  # Create local config in this directory
  sortbench config show          # Show effective config`,
	}

	cmd.AddCommand(newConfigInitCmd())
	cmd.AddCommand(newConfigShowCmd())

	return cmd
}

func newConfigInitCmd() *cobra.Command {
	var (
		force  bool
		stdout bool
		local  bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create default config file",
		Args:  cobra.NoArgs,
		Example: `  sortbench config init           # Create global config
  sortbench config init --local   # Create .sortbench.toml here
  sortbench config init -f        # Overwrite existing config
  sortbench config init -s        # Print config to stdout`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := output.FromContext(cmd.Context())

			content := config.DefaultConfig()
			if local {
				content = config.DefaultLocalConfig()
			}
			if stdout {
				out.Print(content)
				return nil
			}

			var (
				path string
				err  error
			)
			if local {
				var wd string
				if wd, err = os.Getwd(); err != nil {
					return fmt.Errorf("failed to get working directory: %w", err)
				}
				path, err = config.InitLocal(wd, force)
			} else {
				path, err = config.Init(force)
			}
			if err != nil {
				return err
			}

			out.Printf("Created config file: %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing config")
	cmd.Flags().BoolVarP(&stdout, "stdout", "s", false, "Print config to stdout")
	cmd.Flags().BoolVar(&local, "local", false, "Create .sortbench.toml in the working directory instead of global config")

	return cmd
}

func newConfigShowCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show effective configuration",
		Args:  cobra.NoArgs,
		Long: `Show effective configuration.

Values come from the global config, then .sortbench.toml in the working
directory, then SORTBENCH_* environment variables.`,
		Example: `  sortbench config show         # Show effective config
  sortbench config show --json  # Output as JSON`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := config.FromContext(ctx)
			out := output.FromContext(ctx)

			if jsonOutput {
				enc := json.NewEncoder(out.Writer())
				enc.SetIndent("", "  ")
				return enc.Encode(cfg)
			}

			out.Fields(configFields(cfg)...)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}

// configFields flattens cfg into key/value pairs for output.Fields
func configFields(cfg *config.Config) []string {
	orNone := func(s string) string {
		if s == "" {
			return "(none)"
		}
		return s
	}

	registryFile := cfg.RegistryFile
	if registryFile == "" {
		registryFile = "(built-in)"
	}

	return []string{
		"config", orNone(cfg.Path),
		"registry_file", registryFile,
		"theme", cfg.Theme,
		"runner.command", cfg.Runner.Command,
		"runner.args", strings.Join(cfg.Runner.Args, " "),
		"runner.dir", orNone(cfg.Runner.Dir),
	}
}
