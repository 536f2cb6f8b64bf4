package refparser_test

import (
	"testing"

	"github.com/xapi-project/xapi/internal/builder"
	"github.com/xapi-project/xapi/internal/config"
	"github.com/xapi-project/xapi/internal/input"
	"github.com/xapi-project/xapi/internal/model"
	"github.com/xapi-project/xapi/internal/refparser"
)

func parse(t *testing.T, cfg *config.ParserConfig, src string) *model.Model {
	t.Helper()
	b := builder.New(builder.Config{})
	buf := input.NewBuffer("mod.rs", src)
	if errs := (refparser.Parser{}).Parse(cfg, buf, b); len(errs) > 0 {
		t.Fatalf("parse errors: %v", errs)
	}
	m, _ := b.Build()
	if errs := b.Errors(); len(errs) > 0 {
		t.Fatalf("build errors: %v", errs)
	}
	return m
}

func TestParseStructAndComments(t *testing.T) {
	m := parse(t, &config.ParserConfig{}, `
/// A point in space.
pub struct Point {
  /// X coordinate.
  x: f64,
  y: f64,
}
`)
	p := m.Root.Dto("Point")
	if p == nil {
		t.Fatal("expected Dto Point")
	}
	docs := p.Attributes.Docs()
	if len(docs) != 1 || docs[0].Text != "A point in space." {
		t.Fatalf("unexpected docs: %+v", docs)
	}
	x := p.Field("x")
	if x == nil || x.Type.Kind != model.TypeF64 {
		t.Fatalf("expected field x: f64, got %+v", x)
	}
	if len(x.Attributes.Docs()) != 1 {
		t.Fatalf("expected field x to carry its doc comment, got %+v", x.Attributes)
	}
}

func TestParsePrivateItemsDroppedByDefault(t *testing.T) {
	m := parse(t, &config.ParserConfig{}, `
pub struct Public {}
`)
	if m.Root.Dto("Public") == nil {
		t.Fatal("expected Dto Public")
	}

	b := builder.New(builder.Config{})
	buf := input.NewBuffer("mod.rs", `
pub struct Public {}
struct Private {}
`)
	if errs := (refparser.Parser{}).Parse(&config.ParserConfig{EnableParsePrivate: false}, buf, b); len(errs) > 0 {
		t.Fatalf("parse errors: %v", errs)
	}
	m2, _ := b.Build()
	if m2.Root.Dto("Public") == nil {
		t.Fatal("expected pub struct Public to survive")
	}
	if m2.Root.Dto("Private") != nil {
		t.Fatal("expected private struct Private to be dropped")
	}
}

func TestParsePrivateItemsKeptWhenEnabled(t *testing.T) {
	b := builder.New(builder.Config{})
	buf := input.NewBuffer("mod.rs", `struct Private {}`)
	cfg := &config.ParserConfig{EnableParsePrivate: true}
	if errs := (refparser.Parser{}).Parse(cfg, buf, b); len(errs) > 0 {
		t.Fatalf("parse errors: %v", errs)
	}
	m, _ := b.Build()
	if m.Root.Dto("Private") == nil {
		t.Fatal("expected struct Private to survive with EnableParsePrivate")
	}
}

func TestParseUserTypeMapping(t *testing.T) {
	cfg := &config.ParserConfig{UserTypes: []config.UserTypeMapping{
		{Parse: "Uuid", Name: "uuid"},
	}}
	m := parse(t, cfg, `pub struct Entity { id: Uuid }`)
	f := m.Root.Dto("Entity").Field("id")
	if f == nil || f.Type.Kind != model.TypeUser || f.Type.UserName != "uuid" {
		t.Fatalf("expected user type uuid, got %+v", f)
	}
}

func TestParseFnSkipsBody(t *testing.T) {
	m := parse(t, &config.ParserConfig{}, `
pub fn greet(name: string) -> string {
  let braces = { 1 };
  return name;
}
`)
	r := m.Root.Rpc("greet")
	if r == nil {
		t.Fatal("expected Rpc greet")
	}
	if len(r.Params) != 1 || r.Params[0].Name != "name" {
		t.Fatalf("unexpected params: %+v", r.Params)
	}
	if r.ReturnType == nil || r.ReturnType.Kind != model.TypeString {
		t.Fatalf("expected return type string, got %+v", r.ReturnType)
	}
}

func TestParseNestedModInsideStruct(t *testing.T) {
	m := parse(t, &config.ParserConfig{}, `
pub struct Outer {
  name: string,
} {
  pub struct Inner {}
}
`)
	outer := m.Root.Dto("Outer")
	if outer == nil || outer.Nested == nil {
		t.Fatal("expected Outer with a nested namespace")
	}
	if outer.Nested.Dto("Inner") == nil {
		t.Fatal("expected nested Dto Inner")
	}
}

func TestParseMalformedInputReportsError(t *testing.T) {
	b := builder.New(builder.Config{})
	buf := input.NewBuffer("mod.rs", `struct {}`)
	errs := (refparser.Parser{}).Parse(&config.ParserConfig{}, buf, b)
	if len(errs) == 0 {
		t.Fatal("expected a parse error for a struct missing its name")
	}
}
