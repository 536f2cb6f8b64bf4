// Package view implements the read-only, transformable projection of a
// model.Model (spec §4.4). A View mirrors the entity tree; each wrapper
// type holds a pointer to its model entity plus the set of Transforms
// registered on the View, consulted whenever the wrapper is interrogated.
// Nothing in this package mutates the underlying Model.
package view

import "github.com/xapi-project/xapi/internal/model"

// NamespaceTransform renames a Namespace as reported by the view.
type NamespaceTransform interface {
	Name(name *string)
}

// DtoTransform renames a Dto as reported by the view.
type DtoTransform interface {
	Name(name *string)
}

// RpcTransform renames an Rpc as reported by the view.
type RpcTransform interface {
	Name(name *string)
}

// EnumTransform renames an Enum as reported by the view.
type EnumTransform interface {
	Name(name *string)
}

// TypeAliasTransform renames a TypeAlias as reported by the view.
type TypeAliasTransform interface {
	Name(name *string)
}

// FieldTransform renames a Field as reported by the view.
type FieldTransform interface {
	Name(name *string)
}

// EntityIdTransform rewrites the textual path segments of an entity's own
// qualified id as reported by the view (e.g. case conversion for a target
// language's naming convention).
type EntityIdTransform interface {
	Path(segments *[]string)
}

// TypeRefTransform rewrites the textual path segments of a Type_Api
// reference as reported by the view. Kept distinct from EntityIdTransform
// because a generator frequently needs different rewriting rules for "the
// name this entity is given" versus "the name used to refer to some other
// entity from within a Type" (spec §4.4).
type TypeRefTransform interface {
	Path(segments *[]string)
}

// AttributeTransform is reserved for generator-specific annotation
// rewriting (spec §4.4). No rewriting hook is defined yet; a generator
// that needs one defines its own interface and type-asserts for it, the
// same way NamespaceFilter augments NamespaceTransform.
type AttributeTransform interface {
	IsAttributeTransform()
}

// NamespaceFilter optionally augments a NamespaceTransform with a predicate
// controlling whether a Namespace is visible to iteration and lookup.
type NamespaceFilter interface {
	Include(ns *model.Namespace) bool
}

// DtoFilter optionally augments a DtoTransform with a visibility predicate.
type DtoFilter interface {
	Include(d *model.Dto) bool
}

// RpcFilter optionally augments an RpcTransform with a visibility predicate.
type RpcFilter interface {
	Include(r *model.Rpc) bool
}

// EnumFilter optionally augments an EnumTransform with a visibility
// predicate.
type EnumFilter interface {
	Include(e *model.Enum) bool
}

// TypeAliasFilter optionally augments a TypeAliasTransform with a
// visibility predicate.
type TypeAliasFilter interface {
	Include(t *model.TypeAlias) bool
}

// FieldFilter optionally augments a FieldTransform with a visibility
// predicate.
type FieldFilter interface {
	Include(f *model.Field) bool
}
