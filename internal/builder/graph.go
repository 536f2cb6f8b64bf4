package builder

import "github.com/xapi-project/xapi/internal/model"

// Edge records that entity From references entity To via a Type (spec
// §4.3 step 4). BreaksCycle is set when the reference sits under an
// Optional or has non-Value Api semantics (see model.Type.BreaksCycle):
// either breaks a would-be value cycle, so validate.go only walks
// non-breaking edges when checking invariant 3.
type Edge struct {
	From, To    model.EntityID
	BreaksCycle bool
}

// Graph is the dependency graph from spec §4.3 step 4: nodes are qualified
// namespace-child EntityIDs, edges are "A uses B" derived from field/param/
// return/alias-target/nested-entity types. It is a plain adjacency list: no
// third-party graph library in the retrieval pack models a directed graph
// with this shape, and the traversals validate.go and the generators need
// (DFS cycle check, topological order) are a handful of lines each.
type Graph struct {
	nodes map[string]model.EntityID
	edges map[string][]Edge
}

func newGraph() *Graph {
	return &Graph{nodes: map[string]model.EntityID{}, edges: map[string][]Edge{}}
}

func (g *Graph) addNode(id model.EntityID) {
	g.nodes[id.Key()] = id
}

func (g *Graph) addEdge(from, to model.EntityID, breaksCycle bool) {
	g.addNode(from)
	g.addNode(to)
	g.edges[from.Key()] = append(g.edges[from.Key()], Edge{From: from, To: to, BreaksCycle: breaksCycle})
}

// Edges returns the outgoing edges of id, in insertion order.
func (g *Graph) Edges(id model.EntityID) []Edge { return g.edges[id.Key()] }

// Nodes returns every node in the graph, order unspecified.
func (g *Graph) Nodes() []model.EntityID {
	out := make([]model.EntityID, 0, len(g.nodes))
	for _, id := range g.nodes {
		out = append(out, id)
	}
	return out
}

// TopoOrder returns nodes in dependency order: a post-order DFS places every
// node after everything it points to, so a referenced type comes before its
// referrer. The DFS follows every edge, cycle-breaking ones included, so it
// returns ok=false for any cycle, even one that validate.go accepts.
func (g *Graph) TopoOrder() (order []model.EntityID, ok bool) {
	const (
		white = 0
		gray  = 1
		black = 2
	)
	color := map[string]int{}
	var visit func(id model.EntityID) bool
	visit = func(id model.EntityID) bool {
		switch color[id.Key()] {
		case black:
			return true
		case gray:
			return false
		}
		color[id.Key()] = gray
		for _, e := range g.edges[id.Key()] {
			if !visit(e.To) {
				return false
			}
		}
		color[id.Key()] = black
		order = append(order, id)
		return true
	}
	for _, id := range g.Nodes() {
		if !visit(id) {
			return nil, false
		}
	}
	return order, true
}
