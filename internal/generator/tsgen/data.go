package tsgen

import (
	"fmt"
	"strings"

	"github.com/iancoleman/strcase"

	"github.com/xapi-project/xapi/internal/model"
	"github.com/xapi-project/xapi/internal/parserutil"
	"github.com/xapi-project/xapi/internal/view"
)

// namespaceData is the Mustache context for one rendered ".ts" file: only
// this namespace's own Dtos/Enums/Aliases/Rpcs, not its nested namespaces
// (those render to their own file).
type namespaceData struct {
	Dtos    []dtoData
	Enums   []enumData
	Aliases []aliasData
	Rpcs    []rpcData
}

// docBlock is the Mustache context for a rendered "/** ... */" comment. A
// nil *docBlock renders nothing, so every declaration's Doc field is only
// non-nil when the source entity actually carried a doc comment.
type docBlock struct {
	Lines []string
}

// buildDoc renders attrs' doc comments through FormatDocComment the way the
// teacher's documentation.go feeds a Markdown doc comment into generated
// source rather than emitting it verbatim.
func buildDoc(attrs view.Attributes) *docBlock {
	docs := attrs.Docs()
	if len(docs) == 0 {
		return nil
	}
	texts := make([]string, len(docs))
	for i, d := range docs {
		texts[i] = d.Text
	}
	lines := parserutil.FormatDocComment(strings.Join(texts, "\n"))
	if len(lines) == 0 {
		return nil
	}
	return &docBlock{Lines: lines}
}

type dtoData struct {
	Name   string
	Doc    *docBlock
	Fields []fieldData
}

type fieldData struct {
	Name string
	Doc  *docBlock
	Type string
}

type enumData struct {
	Name   string
	Doc    *docBlock
	Values []enumValueData
}

type enumValueData struct {
	Name   string
	Number int64
}

type aliasData struct {
	Name string
	Doc  *docBlock
	Type string
}

type rpcData struct {
	Name       string
	Doc        *docBlock
	Params     []paramData
	HasReturn  bool
	ReturnType string
}

type paramData struct {
	Name string
	Type string
	Last bool
}

func buildNamespace(ns *view.Namespace) namespaceData {
	var data namespaceData
	for _, d := range ns.Dtos() {
		data.Dtos = append(data.Dtos, buildDto(d))
	}
	for _, e := range ns.Enums() {
		data.Enums = append(data.Enums, buildEnum(e))
	}
	for _, t := range ns.TypeAliases() {
		data.Aliases = append(data.Aliases, aliasData{Name: t.Name(), Doc: buildDoc(t.Attributes()), Type: tsType(t.TargetType())})
	}
	for _, r := range ns.Rpcs() {
		data.Rpcs = append(data.Rpcs, buildRpc(r))
	}
	return data
}

func buildDto(d *view.Dto) dtoData {
	out := dtoData{Name: d.Name(), Doc: buildDoc(d.Attributes())}
	for _, f := range d.Fields() {
		out.Fields = append(out.Fields, fieldData{Name: f.Name(), Doc: buildDoc(f.Attributes()), Type: tsType(f.Type())})
	}
	return out
}

func buildEnum(e *view.Enum) enumData {
	out := enumData{Name: e.Name(), Doc: buildDoc(e.Attributes())}
	for _, v := range e.Values() {
		out.Values = append(out.Values, enumValueData{Name: v.Name, Number: v.Number})
	}
	return out
}

func buildRpc(r *view.Rpc) rpcData {
	out := rpcData{Name: r.Name(), Doc: buildDoc(r.Attributes())}
	params := r.Params()
	for i, p := range params {
		out.Params = append(out.Params, paramData{Name: p.Name(), Type: tsType(p.Type()), Last: i == len(params)-1})
	}
	if ret, ok := r.ReturnType(); ok {
		out.HasReturn = true
		out.ReturnType = tsType(ret)
	}
	return out
}

func hasContent(d namespaceData) bool {
	return len(d.Dtos) > 0 || len(d.Enums) > 0 || len(d.Aliases) > 0 || len(d.Rpcs) > 0
}

// tsType renders a view.Type as a TypeScript type expression, mapping the
// core's fixed-width numerics down to TypeScript's number/bigint split
// (64-bit and wider integers, usize and f128 become bigint, matching how the
// teacher's own protobuf-to-Go codec widens int64 to avoid silent
// truncation; f8 through f64 stay number).
func tsType(t *view.Type) string {
	switch t.Kind() {
	case model.TypeBool:
		return "boolean"
	case model.TypeU8, model.TypeU16, model.TypeU32,
		model.TypeI8, model.TypeI16, model.TypeI32,
		model.TypeF8, model.TypeF16, model.TypeF32, model.TypeF64:
		return "number"
	case model.TypeU64, model.TypeU128, model.TypeUSize,
		model.TypeI64, model.TypeI128, model.TypeF128:
		return "bigint"
	case model.TypeString:
		return "string"
	case model.TypeBytes:
		return "Uint8Array"
	case model.TypeApi:
		return t.ApiPathString()
	case model.TypeArray:
		return fmt.Sprintf("%s[]", tsType(t.Elem()))
	case model.TypeOptional:
		return fmt.Sprintf("%s | undefined", tsType(t.Elem()))
	case model.TypeMap:
		return fmt.Sprintf("Record<%s, %s>", tsType(t.Key()), tsType(t.Value()))
	case model.TypeUser:
		return t.UserName()
	default:
		return "unknown"
	}
}

func pascal(s string) string {
	return strcase.ToCamel(s)
}
