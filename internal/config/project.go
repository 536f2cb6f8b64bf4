// Package config provides the two on-disk configuration shapes the core
// accepts: ProjectConfig (a ".xapi.toml" of CLI flag defaults, the way the
// teacher's sidekick package loads ".sidekick.toml") and ParserConfig (the
// JSON document of spec §6.6, with a YAML fallback for operators who prefer
// it).
package config

import (
	"fmt"
	"os"

	toml "github.com/pelletier/go-toml/v2"
)

// ProjectConfig holds CLI flag defaults for one project, loaded from
// ".xapi.toml" in the current directory before command-line flags are
// applied. Any field left unset here is simply not overridden.
type ProjectConfig struct {
	Input        string   `toml:"input,omitempty"`
	InputRoot    string   `toml:"input-root,omitempty"`
	Parser       string   `toml:"parser,omitempty"`
	ParserConfig string   `toml:"parser-config,omitempty"`
	Generators   []string `toml:"generators,omitempty"`
	Outputs      []string `toml:"outputs,omitempty"`
	OutputRoot   string   `toml:"output-root,omitempty"`
}

// LoadProjectConfig reads path (typically ".xapi.toml"). A missing file is
// not an error: it returns a zero ProjectConfig, the same way the teacher's
// sidekick falls back to defaults when no top-level config file exists.
func LoadProjectConfig(path string) (*ProjectConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &ProjectConfig{}, nil
		}
		return nil, fmt.Errorf("config: reading %q: %w", path, err)
	}
	var cfg ProjectConfig
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: parsing %q: %w", path, err)
	}
	return &cfg, nil
}

// ApplyDefaults fills zero-valued fields of override from c, returning the
// merged configuration. override wins wherever it is non-zero (flags take
// precedence over the project file).
func (c *ProjectConfig) ApplyDefaults(override ProjectConfig) ProjectConfig {
	if override.Input == "" {
		override.Input = c.Input
	}
	if override.InputRoot == "" {
		override.InputRoot = c.InputRoot
	}
	if override.Parser == "" {
		override.Parser = c.Parser
	}
	if override.ParserConfig == "" {
		override.ParserConfig = c.ParserConfig
	}
	if len(override.Generators) == 0 {
		override.Generators = c.Generators
	}
	if len(override.Outputs) == 0 {
		override.Outputs = c.Outputs
	}
	if override.OutputRoot == "" {
		override.OutputRoot = c.OutputRoot
	}
	return override
}
