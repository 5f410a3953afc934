package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/BurntSushi/toml"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Runner.Command != DefaultRunnerCommand {
		t.Errorf("runner.command = %q, want %q", cfg.Runner.Command, DefaultRunnerCommand)
	}
	if strings.Join(cfg.Runner.Args, " ") != "{function} {macraffs} {min} {max}" {
		t.Errorf("runner.args = %v", cfg.Runner.Args)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default().Validate() = %v", err)
	}

	// Mutating one default must not leak into the next
	cfg.Runner.Args[0] = "changed"
	if Default().Runner.Args[0] != "{function}" {
		t.Error("Default() shares its args slice")
	}
}

func TestDefaultConfigTemplateParses(t *testing.T) {
	cfg := Default()
	if _, err := toml.Decode(DefaultConfig(), &cfg); err != nil {
		t.Fatalf("default config template does not parse: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config template is invalid: %v", err)
	}

	var local LocalConfig
	if _, err := toml.Decode(DefaultLocalConfig(), &local); err != nil {
		t.Fatalf("default local config template does not parse: %v", err)
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	writeFile(t, path, `
registry_file = "/opt/algorithms.toml"
theme = "nord"

[runner]
command = "/usr/local/bin/tsodluls-bench"
args = ["--sort", "{function}", "--range={min}-{max}"]
`)

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() = %v", err)
	}
	if cfg.Path != path {
		t.Errorf("Path = %q, want %q", cfg.Path, path)
	}
	if cfg.RegistryFile != "/opt/algorithms.toml" {
		t.Errorf("registry_file = %q", cfg.RegistryFile)
	}
	if cfg.Theme != "nord" {
		t.Errorf("theme = %q", cfg.Theme)
	}
	if cfg.Runner.Command != "/usr/local/bin/tsodluls-bench" {
		t.Errorf("runner.command = %q", cfg.Runner.Command)
	}
	if len(cfg.Runner.Args) != 3 || cfg.Runner.Args[2] != "--range={min}-{max}" {
		t.Errorf("runner.args = %v", cfg.Runner.Args)
	}
}

func TestLoadFile_KeepsDefaultsForUnsetFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	writeFile(t, path, `theme = "none"`)

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Runner.Command != DefaultRunnerCommand {
		t.Errorf("runner.command = %q, want default", cfg.Runner.Command)
	}
	if len(cfg.Runner.Args) != len(DefaultRunnerArgs) {
		t.Errorf("runner.args = %v, want default", cfg.Runner.Args)
	}
}

func TestLoadFile_ExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	writeFile(t, path, `
registry_file = "~/algorithms.toml"
[runner]
dir = "~/bench"
`)

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(home, "algorithms.toml"); cfg.RegistryFile != want {
		t.Errorf("registry_file = %q, want %q", cfg.RegistryFile, want)
	}
	if want := filepath.Join(home, "bench"); cfg.Runner.Dir != want {
		t.Errorf("runner.dir = %q, want %q", cfg.Runner.Dir, want)
	}
}

func TestLoadFile_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"invalid toml", "theme = ", "failed to parse config file"},
		{"relative registry", `registry_file = "algorithms.toml"`, "registry_file must be absolute"},
		{"relative runner dir", "[runner]\ndir = \"..\"", "runner.dir must be absolute"},
		{"empty command", "[runner]\ncommand = \"\"", "runner.command must not be empty"},
		{"unknown theme", `theme = "solarized"`, `invalid theme "solarized"`},
		{"unknown placeholder", "[runner]\nargs = [\"{algo}\"]", "unknown placeholder {algo} in runner.args[0]"},
		{"placeholder in command", "[runner]\ncommand = \"{bin}/bench\"", "in runner.command"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			path := filepath.Join(dir, "config.toml")
			writeFile(t, path, tt.content)

			_, err := LoadFile(path)
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("LoadFile() = %v, want error containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.toml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("LoadFile() = %v, want os.ErrNotExist", err)
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv(EnvConfig, filepath.Join(t.TempDir(), "none.toml"))
	t.Setenv(EnvRunner, "")
	t.Setenv(EnvRegistry, "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() = %v", err)
	}
	if cfg.Path != "" {
		t.Errorf("Path = %q, want empty", cfg.Path)
	}
	if cfg.Runner.Command != DefaultRunnerCommand {
		t.Errorf("runner.command = %q, want default", cfg.Runner.Command)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	writeFile(t, path, "[runner]\ncommand = \"/from/file\"\n")

	t.Setenv(EnvConfig, path)
	t.Setenv(EnvRunner, "/from/env")
	t.Setenv(EnvRegistry, "/etc/sortbench/algorithms.toml")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() = %v", err)
	}
	if cfg.Runner.Command != "/from/env" {
		t.Errorf("runner.command = %q, want /from/env", cfg.Runner.Command)
	}
	if cfg.RegistryFile != "/etc/sortbench/algorithms.toml" {
		t.Errorf("registry_file = %q", cfg.RegistryFile)
	}
}

func TestLoad_InvalidEnvRegistry(t *testing.T) {
	t.Setenv(EnvConfig, filepath.Join(t.TempDir(), "none.toml"))
	t.Setenv(EnvRunner, "")
	t.Setenv(EnvRegistry, "relative.toml")

	if _, err := Load(); err == nil {
		t.Error("Load() should reject a relative SORTBENCH_REGISTRY")
	}
}

func TestValidatePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path    string
		wantErr bool
	}{
		{"", false},
		{"~", false},
		{"~/bench", false},
		{"/abs/path", false},
		{".", true},
		{"..", true},
		{"rel/path", true},
	}

	for _, tt := range tests {
		err := ValidatePath(tt.path, "field")
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidatePath(%q) = %v, wantErr %v", tt.path, err, tt.wantErr)
		}
	}
}

func TestFormatOptions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		opts []string
		want string
	}{
		{[]string{"a"}, `"a"`},
		{[]string{"a", "b"}, `"a" or "b"`},
		{[]string{"a", "b", "c"}, `"a", "b", or "c"`},
	}
	for _, tt := range tests {
		if got := formatOptions(tt.opts); got != tt.want {
			t.Errorf("formatOptions(%v) = %s, want %s", tt.opts, got, tt.want)
		}
	}
}

func TestWithConfig_FromContext(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.Theme = "nord"
	if got := FromContext(WithConfig(context.Background(), &cfg)); got != &cfg {
		t.Error("FromContext did not return the stored config")
	}
	if got := FromContext(context.Background()); got.Runner.Command != DefaultRunnerCommand {
		t.Errorf("fallback config runner.command = %q", got.Runner.Command)
	}
}

func TestInit(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "config.toml")
	t.Setenv(EnvConfig, path)

	got, err := Init(false)
	if err != nil {
		t.Fatalf("Init() = %v", err)
	}
	if got != path {
		t.Errorf("Init() path = %q, want %q", got, path)
	}
	if _, err := LoadFile(path); err != nil {
		t.Errorf("written config does not load: %v", err)
	}

	if _, err := Init(false); err == nil || !strings.Contains(err.Error(), "already exists") {
		t.Errorf("second Init(false) = %v, want already exists", err)
	}
	if _, err := Init(true); err != nil {
		t.Errorf("Init(true) = %v", err)
	}
}

func TestLoad_InvalidFileKeepsEnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	writeFile(t, path, "theme = ")
	t.Setenv(EnvConfig, path)
	t.Setenv(EnvRunner, "/from/env")
	t.Setenv(EnvRegistry, "")

	cfg, err := Load()
	if err == nil || !strings.Contains(err.Error(), "failed to parse config file") {
		t.Errorf("Load() error = %v, want parse error", err)
	}
	if cfg.Runner.Command != "/from/env" {
		t.Errorf("runner.command = %q, want env override despite invalid file", cfg.Runner.Command)
	}
}

func TestLoadGlobal_IgnoresEnv(t *testing.T) {
	t.Setenv(EnvConfig, filepath.Join(t.TempDir(), "none.toml"))
	t.Setenv(EnvRunner, "/from/env")
	t.Setenv(EnvRegistry, "")

	cfg, err := LoadGlobal()
	if err != nil {
		t.Fatalf("LoadGlobal() = %v", err)
	}
	if cfg.Runner.Command != DefaultRunnerCommand {
		t.Errorf("runner.command = %q, want default", cfg.Runner.Command)
	}
}

func TestApplyEnv_OverridesMergedLocal(t *testing.T) {
	t.Setenv(EnvRunner, "/from/env")
	t.Setenv(EnvRegistry, "")

	global := Default()
	merged := MergeLocal(&global, &LocalConfig{Runner: LocalRunner{Command: "./local-runner"}})

	cfg, err := ApplyEnv(*merged)
	if err != nil {
		t.Fatalf("ApplyEnv() = %v", err)
	}
	if cfg.Runner.Command != "/from/env" {
		t.Errorf("runner.command = %q, want env to win over local", cfg.Runner.Command)
	}
	if merged.Runner.Command != "./local-runner" {
		t.Error("ApplyEnv mutated its input")
	}
}

func TestApplyEnv_InvalidKeepsInput(t *testing.T) {
	t.Setenv(EnvRunner, "")
	t.Setenv(EnvRegistry, "relative.toml")

	in := Default()
	in.Theme = "nord"
	cfg, err := ApplyEnv(in)
	if err == nil {
		t.Fatal("ApplyEnv() should reject a relative SORTBENCH_REGISTRY")
	}
	if cfg.Theme != "nord" || cfg.RegistryFile != "" {
		t.Errorf("ApplyEnv() on error = %+v, want input unchanged", cfg)
	}
}
