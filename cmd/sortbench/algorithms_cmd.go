package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/raphi011/sortbench/internal/config"
	"github.com/raphi011/sortbench/internal/output"
	"github.com/raphi011/sortbench/internal/registry"
	"github.com/raphi011/sortbench/internal/ui/static"
)

func newAlgorithmsCmd() *cobra.Command {
	var exact bool

	cmd := &cobra.Command{
		Use:     "algorithms [filter]",
		Short:   "List the algorithms offered by the run menu",
		Aliases: []string{"algos", "ls"},
		GroupID: GroupCore,
		Args:    cobra.MaximumNArgs(1),
		Long: `List the algorithms offered by the run menu.

The # column is the number to type at the run prompt. An optional filter
fuzzy-matches algorithm names; matches are listed best first. With
--exact the argument must be a full algorithm name.`,
		Example: `  sortbench algorithms          # list all algorithms in menu order
  sortbench algorithms radix    # only algorithms matching "radix"
  sortbench algorithms -e "TSODLULS stable sort"`,
		ValidArgsFunction: completeAlgorithmNames,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := config.FromContext(ctx)
			out := output.FromContext(ctx)

			reg, err := loadRegistry(ctx, cfg)
			if err != nil {
				return err
			}

			var filter string
			if len(args) == 1 {
				filter = args[0]
			}

			if exact {
				if filter == "" {
					return usageError(cmd, fmt.Errorf("--exact requires an algorithm name"))
				}
				m, err := reg.Find(filter)
				if err != nil {
					return err
				}
				out.Print(static.RenderAlgorithms([]registry.Match{m}))
				return nil
			}

			matches := reg.Filter(filter)
			if len(matches) == 0 {
				return usageError(cmd, fmt.Errorf("no algorithm matches %q", filter))
			}

			out.Print(static.RenderAlgorithms(matches))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&exact, "exact", "e", false, "Match the full algorithm name instead of filtering")

	return cmd
}

// completeAlgorithmNames completes algorithm names from the configured registry
func completeAlgorithmNames(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	reg, err := loadRegistry(cmd.Context(), config.FromContext(cmd.Context()))
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return reg.Names(), cobra.ShellCompDirectiveNoFileComp
}
