package bench

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/raphi011/sortbench/internal/config"
	"github.com/raphi011/sortbench/internal/log"
)

// Runner starts the external benchmark runner.
type Runner struct {
	Command string
	Args    []string
	Dir     string

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewRunner creates a Runner attached to the process terminal.
func NewRunner(cfg config.RunnerConfig) *Runner {
	return &Runner{
		Command: cfg.Command,
		Args:    cfg.Args,
		Dir:     cfg.Dir,
		Stdin:   os.Stdin,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
	}
}

// Expand replaces {placeholders} in s with values.
// Placeholders without a value are left as-is.
func Expand(s string, values map[string]string) string {
	return config.PlaceholderRegex.ReplaceAllStringFunc(s, func(match string) string {
		if v, ok := values[config.PlaceholderRegex.FindStringSubmatch(match)[1]]; ok {
			return v
		}
		return match
	})
}

// Argv returns the command and arguments for rec, placeholders expanded.
func (r *Runner) Argv(rec Record) (string, []string) {
	values := rec.Values()
	args := make([]string, len(r.Args))
	for i, a := range r.Args {
		args[i] = Expand(a, values)
	}
	return Expand(r.Command, values), args
}

// CommandLine returns the shell-quoted command line for rec, suitable for
// copying into a terminal.
func (r *Runner) CommandLine(rec Record) string {
	name, args := r.Argv(rec)
	parts := make([]string, 0, len(args)+3)
	if r.Dir != "" {
		parts = append(parts, "cd", shellQuote(r.Dir), "&&")
	}
	parts = append(parts, shellQuote(name))
	for _, a := range args {
		parts = append(parts, shellQuote(a))
	}
	return strings.Join(parts, " ")
}

// Run starts the runner for rec and waits for it to exit.
func (r *Runner) Run(ctx context.Context, rec Record) error {
	name, args := r.Argv(rec)

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = r.Dir
	cmd.Stdin = r.Stdin
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr

	done := log.FromContext(ctx).Command(r.Dir, name, args...)
	start := time.Now()
	err := cmd.Run()
	done(time.Since(start))

	if err != nil {
		return fmt.Errorf("benchmark runner %s failed: %w", name, err)
	}
	return nil
}

// shellQuote quotes s for a POSIX shell when it contains anything beyond
// a conservative set of safe characters.
func shellQuote(s string) string {
	if s != "" && strings.IndexFunc(s, func(r rune) bool {
		return !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' || strings.ContainsRune("-_./=:,+@%", r))
	}) < 0 {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
