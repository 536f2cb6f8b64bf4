package model

import "fmt"

// Entity is a borrowed reference to any single node in the API tree: a tagged
// union over the closed set of entity kinds (spec §9, "Polymorphic entity
// lookup"). Exactly one of the pointer fields is non-nil, selected by Kind.
//
// Go has no open polymorphism and does not need it here: the set of kinds is
// fixed, so a struct with one populated pointer per kind plays the role the
// source's dispatch trait plays, at the cost of one empty switch arm per
// kind instead of a trait method — callers type-switch on Kind.
type Entity struct {
	Kind       Kind
	Namespace  *Namespace
	Dto        *Dto
	Rpc        *Rpc
	Enum       *Enum
	TypeAlias  *TypeAlias
	Field      *Field
	Type       *Type
}

// child is the interface satisfied by every namespace child kind
// (Namespace, Dto, Rpc, Enum, TypeAlias). It is unexported: only this
// package defines namespace children, the set is closed.
type child interface {
	entityKind() Kind
	entityName() string
	FindEntity(id EntityID) (Entity, bool)
	QualifyID(id EntityID, referenceable bool) (EntityID, error)
}

// qualifyAmong resolves seg (optionally already kind-tagged) against
// children, trying kinds in the fixed priority order
// (Namespace > Dto > Enum > TypeAlias > Rpc), honoring referenceable when
// this segment is the final one in the path (rest is empty). Fields are not
// namespace children and are handled separately by Dto/Rpc.
func qualifyAmong(children []child, seg Segment, rest EntityID, referenceable bool) (EntityID, error) {
	terminal := rest.IsEmpty()
	for _, kind := range qualifyPriority {
		if kind == KindField {
			continue
		}
		if terminal && referenceable && !referenceableKinds[kind] {
			continue
		}
		if seg.Kind != KindNone && seg.Kind != kind {
			continue
		}
		for _, c := range children {
			if c.entityKind() != kind || c.entityName() != seg.Name {
				continue
			}
			qualifiedRest, err := c.QualifyID(rest, referenceable)
			if err != nil {
				continue
			}
			return prepend(Segment{Kind: kind, Name: seg.Name}, qualifiedRest), nil
		}
	}
	return EntityID{}, fmt.Errorf("no child named %q", seg.Name)
}

// findAmong resolves a qualified (or wildcard-kind) seg against children by
// exact kind+name match, used by FindEntity (no ambiguity: the id already
// carries enough information, or the caller accepts the first name match).
func findAmong(children []child, seg Segment, rest EntityID) (Entity, bool) {
	for _, c := range children {
		if seg.Kind != KindNone && c.entityKind() != seg.Kind {
			continue
		}
		if c.entityName() != seg.Name {
			continue
		}
		return c.FindEntity(rest)
	}
	return Entity{}, false
}
