// Package debug implements a Generator that dumps a View's tree as an
// indented, human-readable listing, for use as the builder's
// PreValidatePrintDebug hook and as a quick way to inspect what a parser
// produced without writing a real target-language generator.
package debug

import (
	"fmt"

	"github.com/xapi-project/xapi/internal/generator"
	"github.com/xapi-project/xapi/internal/model"
	"github.com/xapi-project/xapi/internal/output"
	"github.com/xapi-project/xapi/internal/view"
)

func typeString(t *view.Type) string { return generator.RenderType(t) }

// Generator recursively dumps every namespace, in the style of a
// reflection-based debug print: one line per entity, indented by nesting
// depth.
type Generator struct{}

func (Generator) Generate(v *view.View, out output.Output) error {
	meta := &model.ChunkMetadata{RelativeFilePath: "debug.txt"}
	out.StartChunk(meta)
	writeNamespace(out, v.Root(), 0)
	out.EndChunk(meta)
	return nil
}

func writeNamespace(out output.Output, ns *view.Namespace, depth int) {
	indent(out, depth)
	if path := ns.Attributes().EntityID().Path(); len(path) > 0 {
		out.WriteString(fmt.Sprintf("namespace %s (%s)\n", ns.Name(), generator.RenderPath(path)))
	} else {
		out.WriteString(fmt.Sprintf("namespace %s\n", ns.Name()))
	}

	for _, child := range ns.Namespaces() {
		writeNamespace(out, child, depth+1)
	}
	for _, d := range ns.Dtos() {
		writeDto(out, d, depth+1)
	}
	for _, r := range ns.Rpcs() {
		writeRpc(out, r, depth+1)
	}
	for _, e := range ns.Enums() {
		writeEnum(out, e, depth+1)
	}
	for _, t := range ns.TypeAliases() {
		indent(out, depth+1)
		out.WriteString(fmt.Sprintf("alias %s = %s\n", t.Name(), typeString(t.TargetType())))
	}
}

func writeDto(out output.Output, d *view.Dto, depth int) {
	indent(out, depth)
	out.WriteString(fmt.Sprintf("dto %s\n", d.Name()))
	for _, f := range d.Fields() {
		indent(out, depth+1)
		out.WriteString(fmt.Sprintf("field %s: %s\n", f.Name(), typeString(f.Type())))
	}
	if nested, ok := d.Nested(); ok {
		writeNamespace(out, nested, depth+1)
	}
}

func writeRpc(out output.Output, r *view.Rpc, depth int) {
	indent(out, depth)
	out.WriteString(fmt.Sprintf("rpc %s\n", r.Name()))
	for _, p := range r.Params() {
		indent(out, depth+1)
		out.WriteString(fmt.Sprintf("param %s: %s\n", p.Name(), typeString(p.Type())))
	}
	if ret, ok := r.ReturnType(); ok {
		indent(out, depth+1)
		out.WriteString(fmt.Sprintf("returns %s\n", typeString(ret)))
	}
}

func writeEnum(out output.Output, e *view.Enum, depth int) {
	indent(out, depth)
	out.WriteString(fmt.Sprintf("enum %s\n", e.Name()))
	for _, v := range e.Values() {
		indent(out, depth+1)
		out.WriteString(fmt.Sprintf("%s = %d\n", v.Name, v.Number))
	}
}

func indent(out output.Output, depth int) {
	for i := 0; i < depth; i++ {
		out.WriteString("  ")
	}
}
