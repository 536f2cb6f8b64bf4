package builder

import (
	"fmt"

	"github.com/xapi-project/xapi/internal/apierr"
	"github.com/xapi-project/xapi/internal/model"
)

// scope is one enclosing namespace considered during leaf-outward
// resolution, paired with its own fully-qualified id.
type scope struct {
	ns  *model.Namespace
	abs model.EntityID
}

// qualify walks the merged tree, resolving every unqualified Type_Api
// reference (spec §4.3 step 3) and stamping each entity's Attributes.EntityID
// with its fully-qualified id (spec §3.4). It also populates graph with one
// edge per reference found, for step 4.
func (b *Builder) qualify(root *model.Namespace, graph *Graph) {
	root.Attributes.EntityID = model.EntityID{}
	b.qualifyNamespace(root, model.EntityID{}, nil, graph)
}

func (b *Builder) qualifyNamespace(ns *model.Namespace, abs model.EntityID, outer []scope, graph *Graph) {
	chain := make([]scope, len(outer), len(outer)+1)
	copy(chain, outer)
	chain = append(chain, scope{ns: ns, abs: abs})

	for _, child := range ns.Namespaces {
		childAbs := abs.PushBack(model.KindNamespace, child.Name)
		child.Attributes.EntityID = childAbs
		b.qualifyNamespace(child, childAbs, chain, graph)
	}

	for _, d := range ns.Dtos {
		dtoAbs := abs.PushBack(model.KindDto, d.Name)
		d.Attributes.EntityID = dtoAbs
		graph.addNode(dtoAbs)

		dtoChain := chain
		if d.Nested != nil {
			d.Nested.Attributes.EntityID = dtoAbs
			dtoChain = append(append([]scope{}, chain...), scope{ns: d.Nested, abs: dtoAbs})
			b.qualifyNamespace(d.Nested, dtoAbs, chain, graph)
		}
		for _, f := range d.Fields {
			f.Attributes.EntityID = dtoAbs.PushBack(model.KindField, f.Name)
			b.qualifyType(&f.Type, dtoChain, graph, dtoAbs, fmt.Sprintf("dto %s field %s", dtoAbs, f.Name))
		}
	}

	for _, r := range ns.Rpcs {
		rpcAbs := abs.PushBack(model.KindRpc, r.Name)
		r.Attributes.EntityID = rpcAbs
		graph.addNode(rpcAbs)
		for _, p := range r.Params {
			p.Attributes.EntityID = rpcAbs.PushBack(model.KindField, p.Name)
			b.qualifyType(&p.Type, chain, graph, rpcAbs, fmt.Sprintf("rpc %s param %s", rpcAbs, p.Name))
		}
		if r.ReturnType != nil {
			b.qualifyType(r.ReturnType, chain, graph, rpcAbs, fmt.Sprintf("rpc %s return type", rpcAbs))
		}
	}

	for _, e := range ns.Enums {
		enumAbs := abs.PushBack(model.KindEnum, e.Name)
		e.Attributes.EntityID = enumAbs
		graph.addNode(enumAbs)
		for _, v := range e.Values {
			v.Attributes.EntityID = enumAbs.PushBack(model.KindNone, v.Name)
		}
	}

	for _, t := range ns.TypeAliases {
		aliasAbs := abs.PushBack(model.KindTypeAlias, t.Name)
		t.Attributes.EntityID = aliasAbs
		graph.addNode(aliasAbs)
		b.qualifyType(&t.TargetType, chain, graph, aliasAbs, fmt.Sprintf("type alias %s target", aliasAbs))
	}
}

// qualifyType resolves every unqualified Type_Api reachable from t, recording
// a dependency edge fromID -> target for each (step 4), and an
// UnresolvedReference error for each that fails to resolve.
func (b *Builder) qualifyType(t *model.Type, chain []scope, graph *Graph, fromID model.EntityID, context string) {
	// WalkApiRefs hands fn only the Api node, so note first which of them
	// sit under an Optional: such an edge breaks a value cycle.
	underOptional := map[*model.Type]bool{}
	var mark func(t *model.Type, optional bool)
	mark = func(t *model.Type, optional bool) {
		switch t.Kind {
		case model.TypeApi:
			underOptional[t] = optional
		case model.TypeArray, model.TypeOptional:
			mark(t.Elem, optional || t.Kind == model.TypeOptional)
		case model.TypeMap:
			mark(t.Key, optional)
			mark(t.Value, optional)
		}
	}
	mark(t, false)
	t.WalkApiRefs(func(ref *model.Type) {
		if !ref.ApiID.IsQualified() {
			qualified, ok := resolveLeafOutward(chain, ref.ApiID)
			if !ok {
				b.errs = append(b.errs, &apierr.UnresolvedReference{ID: ref.ApiID.String(), Context: context})
				return
			}
			ref.ApiID = qualified
		}
		graph.addEdge(fromID, ref.ApiID, underOptional[ref] || ref.BreaksCycle())
	})
}

// resolveLeafOutward implements spec §4.3's leaf-outward search: try the
// innermost scope's own QualifyID first (covers "search siblings"), then
// each enclosing namespace in turn, stopping at the root. The first
// resolvable match wins.
func resolveLeafOutward(chain []scope, id model.EntityID) (model.EntityID, bool) {
	for i := len(chain) - 1; i >= 0; i-- {
		s := chain[i]
		qualified, err := s.ns.QualifyID(id, true)
		if err != nil {
			continue
		}
		full := model.QualifiedEntityID(append(s.abs.Segments(), qualified.Segments()...)...)
		return full, true
	}
	return model.EntityID{}, false
}
