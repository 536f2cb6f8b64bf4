package model

import "fmt"

// Rpc is a named remote procedure call: a set of typed parameters and an
// optional return type (spec §3.1).
type Rpc struct {
	Name       string
	Params     []*Field
	ReturnType *Type
	Attributes Attributes
}

func (r *Rpc) entityKind() Kind   { return KindRpc }
func (r *Rpc) entityName() string { return r.Name }

// Param returns the parameter with the given name, or nil.
func (r *Rpc) Param(name string) *Field {
	for _, p := range r.Params {
		if p.Name == name {
			return p
		}
	}
	return nil
}

func (r *Rpc) FindEntity(id EntityID) (Entity, bool) {
	if id.IsEmpty() {
		return Entity{Kind: KindRpc, Rpc: r}, true
	}
	seg, rest, _ := id.PopFront()
	if seg.Kind == KindField || seg.Kind == KindNone {
		if p := r.Param(seg.Name); p != nil {
			return p.FindEntity(rest)
		}
	}
	return Entity{}, false
}

func (r *Rpc) QualifyID(id EntityID, referenceable bool) (EntityID, error) {
	if id.IsEmpty() {
		return EntityID{}, nil
	}
	if referenceable {
		return EntityID{}, fmt.Errorf("qualify_id %s - rpc %q has no referenceable children", id.String(), r.Name)
	}
	seg, rest, _ := id.PopFront()
	if seg.Kind == KindField || seg.Kind == KindNone {
		if p := r.Param(seg.Name); p != nil {
			childQualified, err := p.QualifyID(rest, referenceable)
			if err != nil {
				return EntityID{}, err
			}
			return prepend(Segment{Kind: KindField, Name: seg.Name}, childQualified), nil
		}
	}
	return EntityID{}, fmt.Errorf("qualify_id %s - no param named %q in rpc %q", id.String(), seg.Name, r.Name)
}
