package model

import "fmt"

// EnumValueNumber is the explicit integer backing an EnumValue.
type EnumValueNumber = int64

// EnumValue is one named, numbered value within an Enum (spec §3.1).
type EnumValue struct {
	Name       string
	Number     EnumValueNumber
	Attributes Attributes
}

// Enum is a closed set of named, numbered values (spec §3.1). Numbers
// auto-increment from 0 unless the source assigns one explicitly, in which
// case the counter resumes from the explicit value + 1 (spec §3.1, §8
// scenario 6).
type Enum struct {
	Name       string
	Values     []*EnumValue
	Attributes Attributes
}

func (e *Enum) entityKind() Kind   { return KindEnum }
func (e *Enum) entityName() string { return e.Name }

// Value returns the value with the given name, or nil.
func (e *Enum) Value(name string) *EnumValue {
	for _, v := range e.Values {
		if v.Name == name {
			return v
		}
	}
	return nil
}

// FindEntity implements the leaf-entity contract: an Enum has no
// addressable children (enum values are not independently addressable by
// EntityID), so only the empty id resolves.
func (e *Enum) FindEntity(id EntityID) (Entity, bool) {
	if id.IsEmpty() {
		return Entity{Kind: KindEnum, Enum: e}, true
	}
	return Entity{}, false
}

func (e *Enum) QualifyID(id EntityID, _ bool) (EntityID, error) {
	if id.IsEmpty() {
		return EntityID{}, nil
	}
	return EntityID{}, fmt.Errorf("qualify_id %s - enum %q has no children", id.String(), e.Name)
}
