package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/raphi011/sortbench/internal/config"
	"github.com/raphi011/sortbench/internal/log"
	"github.com/raphi011/sortbench/internal/registry"
)

// loadRegistry returns the configured registry file, or the built-in
// algorithms when none is configured.
func loadRegistry(ctx context.Context, cfg *config.Config) (*registry.Registry, error) {
	l := log.FromContext(ctx)

	if cfg.RegistryFile == "" {
		reg := registry.Builtin()
		l.Debug("registry loaded", "source", "builtin", "algorithms", reg.Len())
		return reg, nil
	}

	reg, err := registry.Load(cfg.RegistryFile)
	if err != nil {
		return nil, fmt.Errorf("load registry: %w", err)
	}
	l.Debug("registry loaded", "source", cfg.RegistryFile, "algorithms", reg.Len())
	return reg, nil
}

// isTerminal reports whether r is an interactive terminal.
func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// usageError wraps err with the command's usage line
func usageError(cmd *cobra.Command, err error) error {
	return fmt.Errorf("%w\n\nUsage: %s", err, cmd.UseLine())
}
