package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/ghodss/yaml"
)

// UserTypeMapping maps raw source text a parser recognizes to an opaque
// Type_User name the core passes through untouched (spec §4.5).
type UserTypeMapping struct {
	Parse string `json:"parse"`
	Name  string `json:"name"`
}

// ParserConfig is the configuration any language parser may honor (spec
// §4.5, §6.6). On disk it is JSON by convention; a ".yml"/".yaml" path is
// also accepted, unmarshaled via ghodss/yaml's JSON-compatible YAML
// decoder so the two forms share one struct and one set of json tags.
type ParserConfig struct {
	UserTypes          []UserTypeMapping `json:"user_types"`
	EnableParsePrivate bool              `json:"enable_parse_private"`
}

// LoadParserConfig reads path, dispatching on its extension. A missing path
// is not an error: it returns a zero ParserConfig (no user types, private
// entities dropped).
func LoadParserConfig(path string) (*ParserConfig, error) {
	if path == "" {
		return &ParserConfig{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &ParserConfig{}, nil
		}
		return nil, fmt.Errorf("config: reading %q: %w", path, err)
	}

	var cfg ParserConfig
	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("config: parsing %q as YAML: %w", path, err)
		}
		return &cfg, nil
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: parsing %q as JSON: %w", path, err)
	}
	return &cfg, nil
}

// UserTypeName returns the Type_User name mapped to raw, if any.
func (c *ParserConfig) UserTypeName(raw string) (string, bool) {
	for _, m := range c.UserTypes {
		if m.Parse == raw {
			return m.Name, true
		}
	}
	return "", false
}
