// Package pipeline implements the sequential parse -> build -> generate
// driver (spec §1, §6.3), grounded on original_source/apyxl/src/lib.rs's
// Executor: one input, one parser, and any number of (generator, outputs)
// pairs.
package pipeline

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/xapi-project/xapi/internal/builder"
	"github.com/xapi-project/xapi/internal/config"
	"github.com/xapi-project/xapi/internal/generator"
	"github.com/xapi-project/xapi/internal/input"
	"github.com/xapi-project/xapi/internal/output"
	"github.com/xapi-project/xapi/internal/view"
)

// Parser is the append-contract every language frontend implements against
// a Builder (spec §6.2). It accumulates errors across chunks rather than
// stopping at the first one, the same contract the Builder itself follows.
type Parser interface {
	Parse(cfg *config.ParserConfig, in input.Input, b *builder.Builder) []error
}

// GeneratorOutput pairs one generator with every output sink its rendered
// text should be written to.
type GeneratorOutput struct {
	Generator generator.Generator
	Outputs   []output.Output
}

// Executor runs one parse -> build -> generate pass.
type Executor struct {
	Input         input.Input
	Parser        Parser
	ParserConfig  *config.ParserConfig
	BuilderConfig builder.Config
	Generators    []GeneratorOutput
}

// Execute runs the pipeline. A parse or build failure aborts the run and
// returns every accumulated error; a generator failure is logged and ends
// only that one Generate call, so the same generator's other outputs and
// sibling generators still run (spec §7).
func (e *Executor) Execute() error {
	if e.Input == nil {
		return fmt.Errorf("pipeline: no input configured")
	}
	if e.Parser == nil {
		return fmt.Errorf("pipeline: no parser configured")
	}

	slog.Info("parsing")
	b := builder.New(e.BuilderConfig)
	if errs := e.Parser.Parse(e.ParserConfig, e.Input, b); len(errs) > 0 {
		return joinErrors("parse", errs)
	}

	slog.Info("building")
	m, _ := b.Build()
	if errs := b.Errors(); len(errs) > 0 {
		return joinErrors("build", errs)
	}
	if m == nil {
		return fmt.Errorf("pipeline: build produced no model")
	}

	v := view.New(m)
	for _, g := range e.Generators {
		name := fmt.Sprintf("%T", g.Generator)
		for _, out := range g.Outputs {
			slog.Info("generating", "generator", name)
			if err := g.Generator.Generate(v, out); err != nil {
				slog.Error("generator failed", "generator", name, "err", err)
			}
		}
	}
	return nil
}

func joinErrors(phase string, errs []error) error {
	msgs := make([]string, len(errs))
	for i, err := range errs {
		msgs[i] = err.Error()
	}
	return fmt.Errorf("pipeline: %s failed:\n%s", phase, strings.Join(msgs, "\n"))
}
