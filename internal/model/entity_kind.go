// Package model implements the API cross-compiler's in-memory entity tree:
// Namespace, Dto, Rpc, Enum, TypeAlias, Field, Type, EntityID and Attributes.
//
// Entities are created by parsers, mutated only by the builder during merge
// and qualification, and are immutable afterward. The view package borrows
// the tree without mutating it.
package model

// Kind tags every addressable entity in the API tree. The set is closed: a
// single switch over Kind replaces the open-ended dispatch a dynamically
// typed implementation would need.
type Kind int

const (
	KindNone Kind = iota
	KindNamespace
	KindDto
	KindRpc
	KindEnum
	KindTypeAlias
	KindField
	// KindType addresses the Type hanging off a TypeAlias (reserved subname
	// "ty", see EntityID.Child and TypeAlias.FindEntity).
	KindType
)

// qualifyPriority is the fixed resolution order from spec §4.1: when an
// unqualified name matches entities of more than one kind, the first kind
// in this list wins.
var qualifyPriority = []Kind{KindNamespace, KindDto, KindEnum, KindTypeAlias, KindRpc, KindField}

// referenceableKinds are the entity kinds a Type_Api may point to.
var referenceableKinds = map[Kind]bool{
	KindDto:       true,
	KindEnum:      true,
	KindTypeAlias: true,
}

func (k Kind) String() string {
	switch k {
	case KindNamespace:
		return "ns"
	case KindDto:
		return "dto"
	case KindRpc:
		return "rpc"
	case KindEnum:
		return "enum"
	case KindTypeAlias:
		return "alias"
	case KindField:
		return "field"
	case KindType:
		return "ty"
	default:
		return "none"
	}
}
