package view

import "github.com/xapi-project/xapi/internal/model"

// Transforms is the immutable, ordered set of transforms layered onto a
// View or SubView. Registering a transform returns a new Transforms value;
// transforms are consulted in registration order (spec §4.4).
type Transforms struct {
	namespace  []NamespaceTransform
	dto        []DtoTransform
	rpc        []RpcTransform
	enum       []EnumTransform
	typeAlias  []TypeAliasTransform
	field      []FieldTransform
	entityID   []EntityIdTransform
	typeRef    []TypeRefTransform
	attribute  []AttributeTransform
}

func (t Transforms) withNamespace(x NamespaceTransform) Transforms {
	t.namespace = append(append([]NamespaceTransform{}, t.namespace...), x)
	return t
}

func (t Transforms) withDto(x DtoTransform) Transforms {
	t.dto = append(append([]DtoTransform{}, t.dto...), x)
	return t
}

func (t Transforms) withRpc(x RpcTransform) Transforms {
	t.rpc = append(append([]RpcTransform{}, t.rpc...), x)
	return t
}

func (t Transforms) withEnum(x EnumTransform) Transforms {
	t.enum = append(append([]EnumTransform{}, t.enum...), x)
	return t
}

func (t Transforms) withTypeAlias(x TypeAliasTransform) Transforms {
	t.typeAlias = append(append([]TypeAliasTransform{}, t.typeAlias...), x)
	return t
}

func (t Transforms) withField(x FieldTransform) Transforms {
	t.field = append(append([]FieldTransform{}, t.field...), x)
	return t
}

func (t Transforms) withEntityID(x EntityIdTransform) Transforms {
	t.entityID = append(append([]EntityIdTransform{}, t.entityID...), x)
	return t
}

func (t Transforms) withTypeRef(x TypeRefTransform) Transforms {
	t.typeRef = append(append([]TypeRefTransform{}, t.typeRef...), x)
	return t
}

func (t Transforms) withAttribute(x AttributeTransform) Transforms {
	t.attribute = append(append([]AttributeTransform{}, t.attribute...), x)
	return t
}

func applyName[T any](xforms []T, apply func(T, *string), name string) string {
	out := name
	for _, x := range xforms {
		apply(x, &out)
	}
	return out
}

func applyPath[T any](xforms []T, apply func(T, *[]string), segments []string) []string {
	out := append([]string{}, segments...)
	for _, x := range xforms {
		apply(x, &out)
	}
	return out
}

func namespaceVisible(xforms []NamespaceTransform, ns *model.Namespace) bool {
	for _, x := range xforms {
		if f, ok := x.(NamespaceFilter); ok && !f.Include(ns) {
			return false
		}
	}
	return true
}

func dtoVisible(xforms []DtoTransform, d *model.Dto) bool {
	for _, x := range xforms {
		if f, ok := x.(DtoFilter); ok && !f.Include(d) {
			return false
		}
	}
	return true
}

func rpcVisible(xforms []RpcTransform, r *model.Rpc) bool {
	for _, x := range xforms {
		if f, ok := x.(RpcFilter); ok && !f.Include(r) {
			return false
		}
	}
	return true
}

func enumVisible(xforms []EnumTransform, e *model.Enum) bool {
	for _, x := range xforms {
		if f, ok := x.(EnumFilter); ok && !f.Include(e) {
			return false
		}
	}
	return true
}

func typeAliasVisible(xforms []TypeAliasTransform, t *model.TypeAlias) bool {
	for _, x := range xforms {
		if f, ok := x.(TypeAliasFilter); ok && !f.Include(t) {
			return false
		}
	}
	return true
}

func fieldVisible(xforms []FieldTransform, f *model.Field) bool {
	for _, x := range xforms {
		if flt, ok := x.(FieldFilter); ok && !flt.Include(f) {
			return false
		}
	}
	return true
}
