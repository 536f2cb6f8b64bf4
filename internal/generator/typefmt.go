package generator

import (
	"fmt"
	"strings"

	"github.com/xapi-project/xapi/internal/model"
	"github.com/xapi-project/xapi/internal/view"
)

// RenderType renders a view.Type as a compact textual signature, shared by
// every bundled generator that needs a human-readable type rendering (the
// debug dumper, and nativegen's round-trip syntax).
func RenderType(t *view.Type) string {
	switch t.Kind() {
	case model.TypeBool:
		return "bool"
	case model.TypeU8:
		return "u8"
	case model.TypeU16:
		return "u16"
	case model.TypeU32:
		return "u32"
	case model.TypeU64:
		return "u64"
	case model.TypeU128:
		return "u128"
	case model.TypeUSize:
		return "usize"
	case model.TypeI8:
		return "i8"
	case model.TypeI16:
		return "i16"
	case model.TypeI32:
		return "i32"
	case model.TypeI64:
		return "i64"
	case model.TypeI128:
		return "i128"
	case model.TypeF8:
		return "f8"
	case model.TypeF16:
		return "f16"
	case model.TypeF32:
		return "f32"
	case model.TypeF64:
		return "f64"
	case model.TypeF128:
		return "f128"
	case model.TypeString:
		return "string"
	case model.TypeBytes:
		return "bytes"
	case model.TypeApi:
		prefix := ""
		switch t.ApiSemantics() {
		case model.SemanticsRef:
			prefix = "&"
		case model.SemanticsMut:
			prefix = "&mut "
		}
		return prefix + t.ApiPathString()
	case model.TypeArray:
		return fmt.Sprintf("[%s]", RenderType(t.Elem()))
	case model.TypeOptional:
		return fmt.Sprintf("%s?", RenderType(t.Elem()))
	case model.TypeMap:
		return fmt.Sprintf("map<%s, %s>", RenderType(t.Key()), RenderType(t.Value()))
	case model.TypeUser:
		return t.UserName()
	default:
		return "?"
	}
}

// RenderPath joins plain path segments with ".", used wherever a generator
// needs the simple dotted form of an EntityID or Type_Api reference (e.g.
// the debug dumper's per-namespace fully-qualified path).
func RenderPath(segments []string) string {
	return strings.Join(segments, ".")
}
