package debug_test

import (
	"strings"
	"testing"

	"github.com/xapi-project/xapi/internal/builder"
	"github.com/xapi-project/xapi/internal/config"
	"github.com/xapi-project/xapi/internal/generator/debug"
	"github.com/xapi-project/xapi/internal/input"
	"github.com/xapi-project/xapi/internal/output"
	"github.com/xapi-project/xapi/internal/refparser"
	"github.com/xapi-project/xapi/internal/view"
)

func TestDebugGeneratorDumpsTree(t *testing.T) {
	b := builder.New(builder.Config{})
	buf := input.NewBuffer("widget/mod.rs", `
pub struct Widget {
  name: string,
}
pub enum Color { Red, Green, Blue }
`)
	cfg := &config.ParserConfig{EnableParsePrivate: true}
	if errs := (refparser.Parser{}).Parse(cfg, buf, b); len(errs) > 0 {
		t.Fatalf("parse errors: %v", errs)
	}
	m, _ := b.Build()
	if errs := b.Errors(); len(errs) > 0 {
		t.Fatalf("build errors: %v", errs)
	}

	var out output.Buffer
	if err := (debug.Generator{}).Generate(view.New(m), &out); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	got := out.String()
	for _, want := range []string{"namespace widget", "dto Widget", "field name: string", "enum Color", "Red = 0"} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q, got:\n%s", want, got)
		}
	}
}
