package model

import (
	"fmt"
	"strings"
)

// Segment is one (Kind, name) pair in an EntityID path. An unqualified
// segment carries KindNone and is resolved by the builder during
// qualification (spec §4.3).
type Segment struct {
	Kind Kind
	Name string
}

func (s Segment) String() string {
	if s.Kind == KindNone {
		return s.Name
	}
	return s.Kind.String() + ":" + s.Name
}

// EntityID is an ordered path through the entity tree, identifying an entity
// relative to some root (usually the API root namespace, but navigation
// methods interpret an EntityID relative to whatever entity they are called
// on). EntityID is a value type: every mutating-looking method returns a new
// EntityID rather than mutating in place, so paths can be freely shared and
// used as map keys via Key().
type EntityID struct {
	segments []Segment
}

// NewEntityID builds an unqualified EntityID from plain names, e.g.
// NewEntityID("ns1", "ns2", "Dto").
func NewEntityID(names ...string) EntityID {
	segments := make([]Segment, len(names))
	for i, n := range names {
		segments[i] = Segment{Kind: KindNone, Name: n}
	}
	return EntityID{segments: segments}
}

// QualifiedEntityID builds an EntityID from already-resolved segments.
func QualifiedEntityID(segments ...Segment) EntityID {
	out := make([]Segment, len(segments))
	copy(out, segments)
	return EntityID{segments: out}
}

// Len returns the number of segments.
func (id EntityID) Len() int { return len(id.segments) }

// IsEmpty reports whether the id has no segments (refers to "self").
func (id EntityID) IsEmpty() bool { return len(id.segments) == 0 }

// Segments returns a copy of the underlying segment slice.
func (id EntityID) Segments() []Segment {
	out := make([]Segment, len(id.segments))
	copy(out, id.segments)
	return out
}

// IsQualified reports whether every segment carries a concrete Kind.
func (id EntityID) IsQualified() bool {
	for _, s := range id.segments {
		if s.Kind == KindNone {
			return false
		}
	}
	return true
}

// PushBack appends a segment and returns the new EntityID.
func (id EntityID) PushBack(kind Kind, name string) EntityID {
	out := make([]Segment, len(id.segments), len(id.segments)+1)
	copy(out, id.segments)
	out = append(out, Segment{Kind: kind, Name: name})
	return EntityID{segments: out}
}

// Child is shorthand for PushBack(KindNone, name), used when building an
// unqualified reference to a named child.
func (id EntityID) Child(name string) EntityID {
	return id.PushBack(KindNone, name)
}

// PopFront removes and returns the first segment, along with the remaining
// EntityID. ok is false if id is empty.
func (id EntityID) PopFront() (seg Segment, rest EntityID, ok bool) {
	if len(id.segments) == 0 {
		return Segment{}, id, false
	}
	out := make([]Segment, len(id.segments)-1)
	copy(out, id.segments[1:])
	return id.segments[0], EntityID{segments: out}, true
}

// PopBack removes and returns the last segment, along with the remaining
// EntityID. ok is false if id is empty.
func (id EntityID) PopBack() (seg Segment, rest EntityID, ok bool) {
	n := len(id.segments)
	if n == 0 {
		return Segment{}, id, false
	}
	out := make([]Segment, n-1)
	copy(out, id.segments[:n-1])
	return id.segments[n-1], EntityID{segments: out}, true
}

// Parent returns the EntityID with its last segment removed. ok is false if
// id is already empty (the root has no parent, spec invariant 5).
func (id EntityID) Parent() (EntityID, bool) {
	_, rest, ok := id.PopBack()
	return rest, ok
}

// Equal reports structural equality, kind and name both considered.
func (id EntityID) Equal(other EntityID) bool {
	if len(id.segments) != len(other.segments) {
		return false
	}
	for i := range id.segments {
		if id.segments[i] != other.segments[i] {
			return false
		}
	}
	return true
}

// Key returns a string uniquely identifying this EntityID, suitable for use
// as a map key (EntityID itself holds a slice and is not comparable).
func (id EntityID) Key() string { return id.String() }

// String renders the textual form: "ns1.ns2.DtoName" when unqualified, or
// "ns:ns1.ns:ns2.dto:DtoName" once every segment has been qualified.
func (id EntityID) String() string {
	parts := make([]string, len(id.segments))
	for i, s := range id.segments {
		parts[i] = s.String()
	}
	return strings.Join(parts, ".")
}

// ParseEntityID parses the textual form produced by String, accepting a mix
// of qualified ("kind:name") and unqualified (bare "name") segments.
func ParseEntityID(s string) (EntityID, error) {
	if s == "" {
		return EntityID{}, nil
	}
	parts := strings.Split(s, ".")
	segments := make([]Segment, len(parts))
	for i, p := range parts {
		if p == "" {
			return EntityID{}, fmt.Errorf("model: empty segment in entity id %q", s)
		}
		kindStr, name, hasKind := strings.Cut(p, ":")
		if !hasKind {
			segments[i] = Segment{Kind: KindNone, Name: p}
			continue
		}
		kind, err := parseKind(kindStr)
		if err != nil {
			return EntityID{}, fmt.Errorf("model: parsing entity id %q: %w", s, err)
		}
		segments[i] = Segment{Kind: kind, Name: name}
	}
	return EntityID{segments: segments}, nil
}

func parseKind(s string) (Kind, error) {
	for _, k := range []Kind{KindNamespace, KindDto, KindRpc, KindEnum, KindTypeAlias, KindField, KindType} {
		if k.String() == s {
			return k, nil
		}
	}
	return KindNone, fmt.Errorf("unknown entity kind %q", s)
}
