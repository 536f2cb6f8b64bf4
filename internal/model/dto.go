package model

import "fmt"

// Dto is a Data Transfer Object: a record of named, typed fields, optionally
// with its own nested namespace of sub-entities (spec §3.1) — used for
// source languages that attach methods or nested types to a record.
type Dto struct {
	Name       string
	Fields     []*Field
	Nested     *Namespace
	Attributes Attributes
}

func (d *Dto) entityKind() Kind   { return KindDto }
func (d *Dto) entityName() string { return d.Name }

// Field returns the field with the given name, or nil.
func (d *Dto) Field(name string) *Field {
	for _, f := range d.Fields {
		if f.Name == name {
			return f
		}
	}
	return nil
}

func (d *Dto) nestedChildren() []child {
	if d.Nested == nil {
		return nil
	}
	return d.Nested.children()
}

func (d *Dto) FindEntity(id EntityID) (Entity, bool) {
	if id.IsEmpty() {
		return Entity{Kind: KindDto, Dto: d}, true
	}
	seg, rest, _ := id.PopFront()
	if seg.Kind == KindField || seg.Kind == KindNone {
		if f := d.Field(seg.Name); f != nil {
			if e, ok := f.FindEntity(rest); ok {
				return e, true
			}
		}
	}
	return findAmong(d.nestedChildren(), seg, rest)
}

func (d *Dto) QualifyID(id EntityID, referenceable bool) (EntityID, error) {
	if id.IsEmpty() {
		return EntityID{}, nil
	}
	seg, rest, _ := id.PopFront()

	if nested := d.nestedChildren(); len(nested) > 0 {
		if q, err := qualifyAmong(nested, seg, rest, referenceable); err == nil {
			return q, nil
		}
	}
	if !referenceable && (seg.Kind == KindField || seg.Kind == KindNone) {
		if f := d.Field(seg.Name); f != nil {
			childQualified, err := f.QualifyID(rest, referenceable)
			if err != nil {
				return EntityID{}, err
			}
			return prepend(Segment{Kind: KindField, Name: seg.Name}, childQualified), nil
		}
	}
	return EntityID{}, fmt.Errorf("qualify_id %s - no child named %q in dto %q", id.String(), seg.Name, d.Name)
}

func prepend(seg Segment, rest EntityID) EntityID {
	return EntityID{segments: append([]Segment{seg}, rest.segments...)}
}
