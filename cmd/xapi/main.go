// Command xapi parses an API description with the language parser named by
// -parser, builds and validates the entity model, and re-emits it through
// every generator:output pair named by -generator/-output (spec §6.5).
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/xapi-project/xapi/internal/builder"
	"github.com/xapi-project/xapi/internal/config"
	"github.com/xapi-project/xapi/internal/generator"
	"github.com/xapi-project/xapi/internal/generator/debug"
	"github.com/xapi-project/xapi/internal/generator/nativegen"
	"github.com/xapi-project/xapi/internal/generator/tsgen"
	"github.com/xapi-project/xapi/internal/input"
	"github.com/xapi-project/xapi/internal/output"
	"github.com/xapi-project/xapi/internal/pipeline"
	"github.com/xapi-project/xapi/internal/refparser"
)

// stringList accumulates repeated occurrences of a flag, the idiomatic
// flag.Value for a flag.Parse-compatible repeatable option.
type stringList []string

func (l *stringList) String() string { return strings.Join(*l, ",") }
func (l *stringList) Set(v string) error {
	*l = append(*l, v)
	return nil
}

func main() {
	var (
		in           = flag.String("input", "", "glob pattern of source files to parse, relative to -input-root")
		inputRoot    = flag.String("input-root", "", "directory -input is resolved against (\".\" when unset)")
		parserName   = flag.String("parser", "", "language parser to use (only \"native\" is bundled)")
		parserConfig = flag.String("parser-config", "", "path to a parser config (JSON, or YAML with a .yaml/.yml extension)")
		outputRoot   = flag.String("output-root", "", "directory -output paths are resolved against (\".\" when unset)")
		projectFile  = flag.String("project", ".xapi.toml", "project config file providing defaults for unset flags")
	)
	var generators, outputs stringList
	flag.Var(&generators, "generator", "generator to run (repeatable): native, debug, or ts")
	flag.Var(&outputs, "output", "generator:path output sink (repeatable); path \"-\" means stdout")
	flag.Parse()

	proj, err := config.LoadProjectConfig(*projectFile)
	if err != nil {
		fatal(err)
	}
	override := config.ProjectConfig{
		Input: *in, InputRoot: *inputRoot, Parser: *parserName,
		ParserConfig: *parserConfig, Generators: generators, Outputs: outputs,
		OutputRoot: *outputRoot,
	}
	cfg := proj.ApplyDefaults(override)
	if cfg.InputRoot == "" {
		cfg.InputRoot = "."
	}

	if err := run(cfg); err != nil {
		fatal(err)
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}

func run(cfg config.ProjectConfig) error {
	if cfg.Input == "" {
		return fmt.Errorf("xapi: -input is required")
	}

	in, err := input.NewGlob(cfg.InputRoot, cfg.Input)
	if err != nil {
		return err
	}

	parser, err := resolveParser(cfg.Parser)
	if err != nil {
		return err
	}

	var parserCfg *config.ParserConfig
	if cfg.ParserConfig != "" {
		parserCfg, err = config.LoadParserConfig(cfg.ParserConfig)
		if err != nil {
			return err
		}
	}

	generatorOutputs, closeOutputs, err := resolveGenerators(cfg, generatorRegistry())
	if err != nil {
		return err
	}
	defer closeOutputs()

	exec := &pipeline.Executor{
		Input:        in,
		Parser:       parser,
		ParserConfig: parserCfg,
		Generators:   generatorOutputs,
	}
	return exec.Execute()
}

func resolveParser(name string) (pipeline.Parser, error) {
	switch name {
	case "", "native":
		return refparser.Parser{}, nil
	default:
		return nil, fmt.Errorf("xapi: unknown parser %q", name)
	}
}

func generatorRegistry() map[string]generator.Generator {
	return map[string]generator.Generator{
		"native": nativegen.Generator{},
		"debug":  debug.Generator{},
		"ts":     tsgen.Generator{},
	}
}

// resolveGenerators matches every -generator against its -output entries
// (each formatted "generator:path"), building one GeneratorOutput per
// named generator. It returns a cleanup func that flushes every Stdout
// output and logs any error a FileSet output recorded; FileSet files are
// closed as each chunk ends, not by the cleanup.
func resolveGenerators(cfg config.ProjectConfig, registry map[string]generator.Generator) ([]pipeline.GeneratorOutput, func(), error) {
	byGenerator := map[string][]string{}
	for _, o := range cfg.Outputs {
		name, path, ok := strings.Cut(o, ":")
		if !ok {
			return nil, nil, fmt.Errorf("xapi: -output %q must be \"generator:path\"", o)
		}
		byGenerator[name] = append(byGenerator[name], path)
	}

	var fileSets []*output.FileSet
	var stdouts []*output.Stdout
	var result []pipeline.GeneratorOutput
	for _, name := range cfg.Generators {
		gen, ok := registry[name]
		if !ok {
			return nil, nil, fmt.Errorf("xapi: unknown generator %q", name)
		}
		paths := byGenerator[name]
		if len(paths) == 0 {
			paths = []string{"-"}
		}
		var outs []output.Output
		for _, p := range paths {
			if p == "-" {
				so := output.NewStdout(os.Stdout)
				stdouts = append(stdouts, so)
				outs = append(outs, so)
				continue
			}
			fs := output.NewFileSet(resolveOutputRoot(cfg.OutputRoot, p))
			fileSets = append(fileSets, fs)
			outs = append(outs, fs)
		}
		result = append(result, pipeline.GeneratorOutput{Generator: gen, Outputs: outs})
	}

	cleanup := func() {
		for _, so := range stdouts {
			if err := so.Flush(); err != nil {
				slog.Error("output", "err", err)
			}
		}
		for _, fs := range fileSets {
			for _, err := range fs.Errors() {
				slog.Error("output", "err", err)
			}
		}
	}
	return result, cleanup, nil
}

func resolveOutputRoot(root, path string) string {
	if root == "" || root == "." {
		return path
	}
	return root + "/" + path
}
