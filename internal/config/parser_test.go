package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/xapi-project/xapi/internal/config"
)

func TestLoadParserConfigEmptyPath(t *testing.T) {
	cfg, err := config.LoadParserConfig("")
	if err != nil {
		t.Fatalf("LoadParserConfig: %v", err)
	}
	if cfg.EnableParsePrivate || len(cfg.UserTypes) != 0 {
		t.Fatalf("expected a zero ParserConfig, got %+v", cfg)
	}
}

func TestLoadParserConfigMissingFile(t *testing.T) {
	cfg, err := config.LoadParserConfig(filepath.Join(t.TempDir(), "missing.json"))
	if err != nil {
		t.Fatalf("LoadParserConfig: %v", err)
	}
	if cfg.EnableParsePrivate {
		t.Fatalf("expected a zero ParserConfig, got %+v", cfg)
	}
}

func TestLoadParserConfigJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "parser.json")
	const doc = `{"enable_parse_private": true, "user_types": [{"parse": "Uuid", "name": "uuid"}]}`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := config.LoadParserConfig(path)
	if err != nil {
		t.Fatalf("LoadParserConfig: %v", err)
	}
	if !cfg.EnableParsePrivate {
		t.Fatal("expected EnableParsePrivate to be true")
	}
	if name, ok := cfg.UserTypeName("Uuid"); !ok || name != "uuid" {
		t.Fatalf("UserTypeName(Uuid) = (%q, %v), want (uuid, true)", name, ok)
	}
}

func TestLoadParserConfigYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "parser.yaml")
	const doc = "enable_parse_private: true\nuser_types:\n  - parse: Uuid\n    name: uuid\n"
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := config.LoadParserConfig(path)
	if err != nil {
		t.Fatalf("LoadParserConfig: %v", err)
	}
	if !cfg.EnableParsePrivate {
		t.Fatal("expected EnableParsePrivate to be true")
	}
	if name, ok := cfg.UserTypeName("Uuid"); !ok || name != "uuid" {
		t.Fatalf("UserTypeName(Uuid) = (%q, %v), want (uuid, true)", name, ok)
	}
}

func TestUserTypeNameNotFound(t *testing.T) {
	cfg := &config.ParserConfig{}
	if _, ok := cfg.UserTypeName("Uuid"); ok {
		t.Fatal("expected UserTypeName to report not-found on an empty mapping list")
	}
}
