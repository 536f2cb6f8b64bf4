package view

import "github.com/xapi-project/xapi/internal/model"

// Namespace is a view of a model.Namespace: its name is subject to
// NamespaceTransform, and its children are filtered and wrapped in turn.
type Namespace struct {
	target *model.Namespace
	xf     *Transforms
}

func (n *Namespace) Name() string {
	return applyName(n.xf.namespace, func(x NamespaceTransform, s *string) { x.Name(s) }, n.target.Name)
}

// Namespaces returns every visible nested namespace, wrapped.
func (n *Namespace) Namespaces() []*Namespace {
	var out []*Namespace
	for _, c := range n.target.Namespaces {
		if !namespaceVisible(n.xf.namespace, c) {
			continue
		}
		out = append(out, &Namespace{target: c, xf: n.xf})
	}
	return out
}

// Dtos returns every visible Dto, wrapped.
func (n *Namespace) Dtos() []*Dto {
	var out []*Dto
	for _, d := range n.target.Dtos {
		if !dtoVisible(n.xf.dto, d) {
			continue
		}
		out = append(out, &Dto{target: d, xf: n.xf})
	}
	return out
}

// Rpcs returns every visible Rpc, wrapped.
func (n *Namespace) Rpcs() []*Rpc {
	var out []*Rpc
	for _, r := range n.target.Rpcs {
		if !rpcVisible(n.xf.rpc, r) {
			continue
		}
		out = append(out, &Rpc{target: r, xf: n.xf})
	}
	return out
}

// Enums returns every visible Enum, wrapped.
func (n *Namespace) Enums() []*Enum {
	var out []*Enum
	for _, e := range n.target.Enums {
		if !enumVisible(n.xf.enum, e) {
			continue
		}
		out = append(out, &Enum{target: e, xf: n.xf})
	}
	return out
}

// TypeAliases returns every visible TypeAlias, wrapped.
func (n *Namespace) TypeAliases() []*TypeAlias {
	var out []*TypeAlias
	for _, t := range n.target.TypeAliases {
		if !typeAliasVisible(n.xf.typeAlias, t) {
			continue
		}
		out = append(out, &TypeAlias{target: t, xf: n.xf})
	}
	return out
}

// Dto returns the named Dto if present and visible.
func (n *Namespace) Dto(name string) (*Dto, bool) {
	d := n.target.Dto(name)
	if d == nil || !dtoVisible(n.xf.dto, d) {
		return nil, false
	}
	return &Dto{target: d, xf: n.xf}, true
}

// Rpc returns the named Rpc if present and visible.
func (n *Namespace) Rpc(name string) (*Rpc, bool) {
	r := n.target.Rpc(name)
	if r == nil || !rpcVisible(n.xf.rpc, r) {
		return nil, false
	}
	return &Rpc{target: r, xf: n.xf}, true
}

// Attributes returns a view of the namespace's attributes.
func (n *Namespace) Attributes() Attributes {
	return Attributes{target: n.target.Attributes, xf: n.xf}
}
