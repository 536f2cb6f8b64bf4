package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/xapi-project/xapi/internal/config"
)

func TestLoadProjectConfigMissingFileIsZeroValue(t *testing.T) {
	cfg, err := config.LoadProjectConfig(filepath.Join(t.TempDir(), ".xapi.toml"))
	if err != nil {
		t.Fatalf("LoadProjectConfig: %v", err)
	}
	if *cfg != (config.ProjectConfig{}) {
		t.Fatalf("expected a zero ProjectConfig, got %+v", cfg)
	}
}

func TestLoadProjectConfigParsesToml(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".xapi.toml")
	const doc = `
input = "**/*.rs"
input-root = "src"
generators = ["ts", "native"]
outputs = ["ts:out/ts", "native:out/native"]
`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := config.LoadProjectConfig(path)
	if err != nil {
		t.Fatalf("LoadProjectConfig: %v", err)
	}
	if cfg.Input != "**/*.rs" || cfg.InputRoot != "src" {
		t.Fatalf("unexpected cfg: %+v", cfg)
	}
	if len(cfg.Generators) != 2 || len(cfg.Outputs) != 2 {
		t.Fatalf("unexpected cfg: %+v", cfg)
	}
}

func TestProjectConfigApplyDefaultsOverrideWins(t *testing.T) {
	base := &config.ProjectConfig{Input: "**/*.rs", Parser: "native"}
	override := config.ProjectConfig{Input: "**/*.ts"}
	merged := base.ApplyDefaults(override)
	if got, want := merged.Input, "**/*.ts"; got != want {
		t.Fatalf("Input = %q, want %q (override wins)", got, want)
	}
	if got, want := merged.Parser, "native"; got != want {
		t.Fatalf("Parser = %q, want %q (fell back to project default)", got, want)
	}
}

func TestProjectConfigApplyDefaultsSliceFallback(t *testing.T) {
	base := &config.ProjectConfig{Generators: []string{"native"}}
	merged := base.ApplyDefaults(config.ProjectConfig{})
	if len(merged.Generators) != 1 || merged.Generators[0] != "native" {
		t.Fatalf("Generators = %v, want [native]", merged.Generators)
	}
}
