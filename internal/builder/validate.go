package builder

import (
	"github.com/xapi-project/xapi/internal/apierr"
	"github.com/xapi-project/xapi/internal/model"
)

// validate enforces every invariant in spec §3.5 against m and graph. merge
// and qualify already reject sibling-name conflicts and unresolved
// references (invariants 1 and 2), so this pass focuses on the invariants
// that need the whole tree or the dependency graph in hand: enum value
// uniqueness, value-type cycles, and global id uniqueness.
func (b *Builder) validate(m *model.Model, graph *Graph) {
	b.validateEnums(m.Root)
	b.validateCycles(m.Root, graph)
	b.validateGlobalIDs(m.Root)
}

func (b *Builder) validateEnums(ns *model.Namespace) {
	for _, child := range ns.Namespaces {
		b.validateEnums(child)
	}
	for _, d := range ns.Dtos {
		if d.Nested != nil {
			b.validateEnums(d.Nested)
		}
	}
	for _, e := range ns.Enums {
		seen := map[int64]string{}
		for _, v := range e.Values {
			if prev, ok := seen[v.Number]; ok && prev != v.Name {
				b.errs = append(b.errs, &apierr.DuplicateEnumValue{Enum: e.Attributes.EntityID.String(), Number: v.Number})
				continue
			}
			seen[v.Number] = v.Name
		}
	}
}

// validateCycles enforces invariant 3: no value-cycle through Dto fields.
// Only edges with BreaksCycle==false participate; Optional and non-Value
// Api references already break any cycle they'd otherwise close.
func (b *Builder) validateCycles(root *model.Namespace, graph *Graph) {
	const (
		white = 0
		gray  = 1
		black = 2
	)
	color := map[string]int{}
	var path []model.EntityID

	var visit func(id model.EntityID) bool
	visit = func(id model.EntityID) bool {
		key := id.Key()
		switch color[key] {
		case black:
			return false
		case gray:
			cycle := append(append([]model.EntityID{}, path...), id)
			b.errs = append(b.errs, &apierr.CyclicValueType{Cycle: idStrings(cycle)})
			return true
		}
		color[key] = gray
		path = append(path, id)
		found := false
		for _, e := range graph.Edges(id) {
			if e.BreaksCycle {
				continue
			}
			if visit(e.To) {
				found = true
			}
		}
		path = path[:len(path)-1]
		color[key] = black
		return found
	}

	for _, id := range graph.Nodes() {
		visit(id)
	}
}

func idStrings(ids []model.EntityID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}

// validateGlobalIDs enforces invariant 6: every entity's fully-qualified id
// is unique across the API. merge's per-namespace sibling check covers the
// namespaces it merges; a Dto's nested namespace is not merged, so
// duplicate children there are caught only by this sweep.
func (b *Builder) validateGlobalIDs(ns *model.Namespace) {
	seen := map[string]bool{}
	b.collectIDs(ns, seen)
}

func (b *Builder) collectIDs(ns *model.Namespace, seen map[string]bool) {
	b.noteID(ns.Attributes.EntityID, seen)
	for _, child := range ns.Namespaces {
		b.collectIDs(child, seen)
	}
	for _, d := range ns.Dtos {
		b.noteID(d.Attributes.EntityID, seen)
		if d.Nested != nil {
			// Nested shares the Dto's own id (nested children are addressed
			// directly through the Dto's path, spec §4.1), so only its
			// children are noted here, not its own id again.
			b.collectNestedIDs(d.Nested, seen)
		}
	}
	for _, r := range ns.Rpcs {
		b.noteID(r.Attributes.EntityID, seen)
	}
	for _, e := range ns.Enums {
		b.noteID(e.Attributes.EntityID, seen)
	}
	for _, t := range ns.TypeAliases {
		b.noteID(t.Attributes.EntityID, seen)
	}
}

// collectNestedIDs notes every child id under ns, without noting ns's own
// id (the caller already accounted for it under the owning Dto's id).
func (b *Builder) collectNestedIDs(ns *model.Namespace, seen map[string]bool) {
	for _, child := range ns.Namespaces {
		b.collectIDs(child, seen)
	}
	for _, d := range ns.Dtos {
		b.noteID(d.Attributes.EntityID, seen)
		if d.Nested != nil {
			b.collectNestedIDs(d.Nested, seen)
		}
	}
	for _, r := range ns.Rpcs {
		b.noteID(r.Attributes.EntityID, seen)
	}
	for _, e := range ns.Enums {
		b.noteID(e.Attributes.EntityID, seen)
	}
	for _, t := range ns.TypeAliases {
		b.noteID(t.Attributes.EntityID, seen)
	}
}

func (b *Builder) noteID(id model.EntityID, seen map[string]bool) {
	key := id.Key()
	if seen[key] {
		b.errs = append(b.errs, &apierr.DuplicateEntity{ID: id.String()})
		return
	}
	seen[key] = true
}
