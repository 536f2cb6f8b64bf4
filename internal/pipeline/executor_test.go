package pipeline_test

import (
	"strings"
	"testing"

	"github.com/xapi-project/xapi/internal/config"
	"github.com/xapi-project/xapi/internal/generator/debug"
	"github.com/xapi-project/xapi/internal/generator/nativegen"
	"github.com/xapi-project/xapi/internal/input"
	"github.com/xapi-project/xapi/internal/output"
	"github.com/xapi-project/xapi/internal/pipeline"
	"github.com/xapi-project/xapi/internal/refparser"
)

func TestExecutorRunsParseBuildAndEveryGenerator(t *testing.T) {
	in := input.NewBuffer("mod.rs", `
pub struct Widget {
  name: string,
}
`)
	var nativeOut, debugOut output.Buffer
	exec := &pipeline.Executor{
		Input:        in,
		Parser:       refparser.Parser{},
		ParserConfig: &config.ParserConfig{EnableParsePrivate: true},
		Generators: []pipeline.GeneratorOutput{
			{Generator: nativegen.Generator{}, Outputs: []output.Output{&nativeOut}},
			{Generator: debug.Generator{}, Outputs: []output.Output{&debugOut}},
		},
	}
	if err := exec.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !strings.Contains(nativeOut.String(), "struct Widget {") {
		t.Errorf("nativegen output missing struct, got:\n%s", nativeOut.String())
	}
	if !strings.Contains(debugOut.String(), "dto Widget") {
		t.Errorf("debug output missing dto, got:\n%s", debugOut.String())
	}
}

func TestExecutorReturnsParseErrors(t *testing.T) {
	in := input.NewBuffer("mod.rs", `struct {}`)
	exec := &pipeline.Executor{
		Input:        in,
		Parser:       refparser.Parser{},
		ParserConfig: &config.ParserConfig{},
	}
	if err := exec.Execute(); err == nil {
		t.Fatal("expected a parse error")
	}
}

func TestExecutorReturnsBuildErrors(t *testing.T) {
	in := input.NewBuffer("mod.rs", `struct Bar { f: Missing }`)
	exec := &pipeline.Executor{
		Input:        in,
		Parser:       refparser.Parser{},
		ParserConfig: &config.ParserConfig{EnableParsePrivate: true},
	}
	if err := exec.Execute(); err == nil {
		t.Fatal("expected a build error for an unresolved reference")
	}
}

func TestExecutorRequiresInputAndParser(t *testing.T) {
	if err := (&pipeline.Executor{Parser: refparser.Parser{}}).Execute(); err == nil {
		t.Fatal("expected an error with no Input configured")
	}
	if err := (&pipeline.Executor{Input: input.NewBuffer("mod.rs", "")}).Execute(); err == nil {
		t.Fatal("expected an error with no Parser configured")
	}
}
