package model

import "fmt"

// Namespace is a named container of namespace children: nested namespaces,
// Dtos, Rpcs, Enums, and TypeAliases (spec §3.1). The root namespace has an
// empty Name and no parent (invariant 5).
type Namespace struct {
	Name        string
	Namespaces  []*Namespace
	Dtos        []*Dto
	Rpcs        []*Rpc
	Enums       []*Enum
	TypeAliases []*TypeAlias
	Attributes  Attributes
}

func (n *Namespace) entityKind() Kind   { return KindNamespace }
func (n *Namespace) entityName() string { return n.Name }

// children returns every namespace child regardless of kind, used by the
// generic qualify/find helpers.
func (n *Namespace) children() []child {
	out := make([]child, 0, len(n.Namespaces)+len(n.Dtos)+len(n.Rpcs)+len(n.Enums)+len(n.TypeAliases))
	for _, c := range n.Namespaces {
		out = append(out, c)
	}
	for _, c := range n.Dtos {
		out = append(out, c)
	}
	for _, c := range n.Rpcs {
		out = append(out, c)
	}
	for _, c := range n.Enums {
		out = append(out, c)
	}
	for _, c := range n.TypeAliases {
		out = append(out, c)
	}
	return out
}

// Namespace returns the immediate child namespace with the given name, or
// nil.
func (n *Namespace) Namespace(name string) *Namespace {
	for _, c := range n.Namespaces {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// Dto returns the immediate child Dto with the given name, or nil.
func (n *Namespace) Dto(name string) *Dto {
	for _, c := range n.Dtos {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// Rpc returns the immediate child Rpc with the given name, or nil.
func (n *Namespace) Rpc(name string) *Rpc {
	for _, c := range n.Rpcs {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// Enum returns the immediate child Enum with the given name, or nil.
func (n *Namespace) Enum(name string) *Enum {
	for _, c := range n.Enums {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// TypeAlias returns the immediate child TypeAlias with the given name, or
// nil.
func (n *Namespace) TypeAlias(name string) *TypeAlias {
	for _, c := range n.TypeAliases {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func (n *Namespace) FindEntity(id EntityID) (Entity, bool) {
	if id.IsEmpty() {
		return Entity{Kind: KindNamespace, Namespace: n}, true
	}
	seg, rest, _ := id.PopFront()
	return findAmong(n.children(), seg, rest)
}

func (n *Namespace) QualifyID(id EntityID, referenceable bool) (EntityID, error) {
	if id.IsEmpty() {
		return EntityID{}, nil
	}
	seg, rest, _ := id.PopFront()
	qualified, err := qualifyAmong(n.children(), seg, rest, referenceable)
	if err != nil {
		return EntityID{}, fmt.Errorf("qualify_id %s - %w", id.String(), err)
	}
	return qualified, nil
}
