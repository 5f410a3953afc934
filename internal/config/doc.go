// Package config handles loading and validation of sortbench configuration.
//
// Configuration only describes the tool itself (where the algorithm
// registry comes from, which runner to start, colors). The benchmark
// values are always typed interactively and are never read from here.
//
// # Configuration Sources (highest priority first)
//
//   - SORTBENCH_RUNNER env var: runner command
//   - SORTBENCH_REGISTRY env var: registry file
//   - .sortbench.toml in the working directory
//   - Global config file (SORTBENCH_CONFIG or ~/.config/sortbench/config.toml)
//   - Default values
//
// # Runner Arguments
//
// runner.args may contain placeholders that are replaced with the
// collected values before the runner starts:
//
//	[runner]
//	command = "./benchmark"
//	args = ["--sort={function}", "--macraffs={macraffs}", "{min}", "{max}"]
//
// Unknown placeholders are rejected when the config is loaded.
//
// # Path Validation
//
// Paths in the global config must be absolute or start with ~. Paths in
// .sortbench.toml may be relative to the directory holding the file.
package config
