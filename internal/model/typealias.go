package model

import "fmt"

// reservedTypeAliasSubname is the sole reserved subname through which a
// TypeAlias's target Type is addressable (spec §9, standardizing the
// source's TY_ALIAS_TARGET_ALL set down to one name).
const reservedTypeAliasSubname = "ty"

// TypeAlias names another Type, possibly a composite one (spec §3.1).
type TypeAlias struct {
	Name       string
	TargetType Type
	Attributes Attributes
}

func (t *TypeAlias) entityKind() Kind   { return KindTypeAlias }
func (t *TypeAlias) entityName() string { return t.Name }

func (t *TypeAlias) FindEntity(id EntityID) (Entity, bool) {
	if id.IsEmpty() {
		return Entity{Kind: KindTypeAlias, TypeAlias: t}, true
	}
	seg, rest, _ := id.PopFront()
	if !rest.IsEmpty() {
		return Entity{}, false
	}
	if (seg.Kind == KindType || seg.Kind == KindNone) && seg.Name == reservedTypeAliasSubname {
		return Entity{Kind: KindType, Type: &t.TargetType}, true
	}
	return Entity{}, false
}

// QualifyID implements the leaf-entity contract: a TypeAlias is itself
// referenceable, but its target Type is not addressed via qualification
// (only via FindEntity's reserved "ty" subname), so only the empty id
// resolves here.
func (t *TypeAlias) QualifyID(id EntityID, _ bool) (EntityID, error) {
	if id.IsEmpty() {
		return EntityID{}, nil
	}
	return EntityID{}, fmt.Errorf("qualify_id %s - type alias %q has no qualifiable children", id.String(), t.Name)
}
