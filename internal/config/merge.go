package config

// MergeLocal merges local overrides into global, returning a new Config
// without mutating global. Returns global unchanged if local is nil.
func MergeLocal(global *Config, local *LocalConfig) *Config {
	if local == nil {
		return global
	}

	merged := *global
	merged.Runner.Args = append([]string(nil), global.Runner.Args...)

	if local.RegistryFile != "" {
		merged.RegistryFile = local.RegistryFile
	}
	if local.Runner.Command != "" {
		merged.Runner.Command = local.Runner.Command
	}
	if local.Runner.Args != nil {
		merged.Runner.Args = append([]string(nil), local.Runner.Args...)
	}
	if local.Runner.Dir != "" {
		merged.Runner.Dir = local.Runner.Dir
	}

	return &merged
}
