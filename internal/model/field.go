package model

import "fmt"

// Field is a named, typed member of a Dto or a parameter of an Rpc (spec
// §3.1). IsStatic distinguishes source-language static/class members from
// instance members; it has no bearing on resolution.
type Field struct {
	Name       string
	Type       Type
	Attributes Attributes
	IsStatic   bool
}

func (f *Field) entityKind() Kind  { return KindField }
func (f *Field) entityName() string { return f.Name }

// FindEntity implements the leaf-entity contract of spec §4.1: only the
// empty id (selecting the Field itself) is accepted.
func (f *Field) FindEntity(id EntityID) (Entity, bool) {
	if id.IsEmpty() {
		return Entity{Kind: KindField, Field: f}, true
	}
	return Entity{}, false
}

// QualifyID implements the leaf-entity contract: Field has no addressable
// children, so only the empty id resolves.
func (f *Field) QualifyID(id EntityID, _ bool) (EntityID, error) {
	if id.IsEmpty() {
		return EntityID{}, nil
	}
	return EntityID{}, fmt.Errorf("qualify_id %s - field %q has no children", id.String(), f.Name)
}
