package main

import (
	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/raphi011/sortbench/internal/bench"
	"github.com/raphi011/sortbench/internal/config"
	"github.com/raphi011/sortbench/internal/log"
	"github.com/raphi011/sortbench/internal/output"
	"github.com/raphi011/sortbench/internal/prompt"
)

func newRunCmd() *cobra.Command {
	var (
		dryRun          bool
		copyToClipboard bool
		message         string
	)

	cmd := &cobra.Command{
		Use:     "run",
		Short:   "Choose an algorithm and input sizes, then start the benchmark",
		Aliases: []string{"r"},
		GroupID: GroupCore,
		Args:    cobra.NoArgs,
		Long: `Choose an algorithm and input sizes, then start the benchmark.

The prompts ask, in order:
  1. which algorithm to benchmark (menu number)
  2. whether to benchmark it using macraffs (y/n)
  3. the minimum number of elements (default 1)
  4. the maximum number of elements (default 1048576)

Each prompt repeats until the answer is valid. The runner configured in
[runner] is then started with the answers substituted into its arguments.
When answers are piped in, any input after the fourth answer is passed on
to the runner's stdin.`,
		Example: `  sortbench run                # prompt, then start the runner
  sortbench run --dry-run      # prompt, then print the runner command line
  sortbench run -n --copy      # copy the command line to the clipboard`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := config.FromContext(ctx)
			l := log.FromContext(ctx)
			out := output.FromContext(ctx)

			reg, err := loadRegistry(ctx, cfg)
			if err != nil {
				return err
			}

			in := cmd.InOrStdin()
			if !isTerminal(in) {
				l.Debug("stdin is not a terminal, reading answers line by line")
			}

			p := prompt.New(in, out.Writer())
			rec, err := bench.Collect(p, reg, message)
			if err != nil {
				return err
			}

			runner := bench.NewRunner(cfg.Runner)
			runner.Stdin = p.Remaining()
			runner.Stdout = cmd.OutOrStdout()
			runner.Stderr = cmd.ErrOrStderr()
			cmdline := runner.CommandLine(rec)

			if copyToClipboard {
				if err := clipboard.WriteAll(cmdline); err != nil {
					l.Printf("Warning: failed to copy to clipboard: %v\n", err)
				} else {
					l.Println("Copied runner command line to clipboard")
				}
			}

			if dryRun {
				out.Println(cmdline)
				return nil
			}

			return runner.Run(ctx, rec)
		},
	}

	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "Print the runner command line instead of starting it")
	cmd.Flags().BoolVar(&copyToClipboard, "copy", false, "Copy the runner command line to the clipboard")
	cmd.Flags().StringVarP(&message, "message", "m", prompt.DefaultAlgorithmMessage, "Question shown above the algorithm menu")

	return cmd
}
