// Package nativegen implements a round-trip Generator for the
// internal/refparser toy syntax: feeding its output back into refparser
// reproduces the same model.Model (modulo comment formatting), the
// mechanism spec §8's round-trip property is exercised with in tests.
package nativegen

import (
	"fmt"

	"github.com/xapi-project/xapi/internal/generator"
	"github.com/xapi-project/xapi/internal/model"
	"github.com/xapi-project/xapi/internal/output"
	"github.com/xapi-project/xapi/internal/view"
)

// Generator emits one chunk, "native.rs", containing the whole view tree
// re-rendered in refparser's grammar.
type Generator struct{}

func (Generator) Generate(v *view.View, out output.Output) error {
	meta := &model.ChunkMetadata{RelativeFilePath: "native.rs"}
	out.StartChunk(meta)
	writeNamespaceBody(out, v.Root(), 0)
	out.EndChunk(meta)
	return nil
}

func writeNamespaceBody(out output.Output, ns *view.Namespace, depth int) {
	for _, child := range ns.Namespaces() {
		writeDocs(out, depth, child.Attributes())
		indent(out, depth)
		out.WriteString(fmt.Sprintf("mod %s {\n", child.Name()))
		writeNamespaceBody(out, child, depth+1)
		indent(out, depth)
		out.WriteString("}\n")
	}
	for _, d := range ns.Dtos() {
		writeDto(out, d, depth)
	}
	for _, r := range ns.Rpcs() {
		writeRpc(out, r, depth)
	}
	for _, e := range ns.Enums() {
		writeEnum(out, e, depth)
	}
	for _, t := range ns.TypeAliases() {
		writeDocs(out, depth, t.Attributes())
		indent(out, depth)
		out.WriteString(fmt.Sprintf("type %s = %s;\n", t.Name(), generator.RenderType(t.TargetType())))
	}
}

func writeDto(out output.Output, d *view.Dto, depth int) {
	writeDocs(out, depth, d.Attributes())
	indent(out, depth)
	out.WriteString(fmt.Sprintf("struct %s {\n", d.Name()))
	for _, f := range d.Fields() {
		writeDocs(out, depth+1, f.Attributes())
		indent(out, depth+1)
		out.WriteString(fmt.Sprintf("%s: %s,\n", f.Name(), generator.RenderType(f.Type())))
	}
	if nested, ok := d.Nested(); ok {
		writeNamespaceBody(out, nested, depth+1)
	}
	indent(out, depth)
	out.WriteString("}\n")
}

func writeRpc(out output.Output, r *view.Rpc, depth int) {
	writeDocs(out, depth, r.Attributes())
	indent(out, depth)
	out.WriteString(fmt.Sprintf("fn %s(", r.Name()))
	for i, p := range r.Params() {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(fmt.Sprintf("%s: %s", p.Name(), generator.RenderType(p.Type())))
	}
	out.WriteString(")")
	if ret, ok := r.ReturnType(); ok {
		out.WriteString(fmt.Sprintf(" -> %s", generator.RenderType(ret)))
	}
	out.WriteString(" {}\n")
}

func writeEnum(out output.Output, e *view.Enum, depth int) {
	writeDocs(out, depth, e.Attributes())
	indent(out, depth)
	out.WriteString(fmt.Sprintf("enum %s {\n", e.Name()))
	for _, val := range e.Values() {
		indent(out, depth+1)
		out.WriteString(fmt.Sprintf("%s = %d,\n", val.Name, val.Number))
	}
	indent(out, depth)
	out.WriteString("}\n")
}

func writeDocs(out output.Output, depth int, attrs view.Attributes) {
	for _, c := range attrs.Docs() {
		indent(out, depth)
		out.WriteString(fmt.Sprintf("/// %s\n", c.Text))
	}
}

func indent(out output.Output, depth int) {
	for i := 0; i < depth; i++ {
		out.WriteString("  ")
	}
}
