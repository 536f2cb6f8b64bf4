package builder

import (
	"testing"

	"github.com/xapi-project/xapi/internal/model"
)

func TestGraphTopoOrderOrdersDependenciesFirst(t *testing.T) {
	a := model.NewEntityID("A")
	b := model.NewEntityID("B")
	c := model.NewEntityID("C")

	g := newGraph()
	g.addEdge(a, b, false)
	g.addEdge(b, c, false)

	order, ok := g.TopoOrder()
	if !ok {
		t.Fatal("expected TopoOrder to succeed on an acyclic graph")
	}
	pos := map[string]int{}
	for i, id := range order {
		pos[id.Key()] = i
	}
	if pos[c.Key()] >= pos[b.Key()] || pos[b.Key()] >= pos[a.Key()] {
		t.Fatalf("expected order C, B, A (dependency-first), got %v", order)
	}
}

func TestGraphTopoOrderDetectsCycle(t *testing.T) {
	a := model.NewEntityID("A")
	b := model.NewEntityID("B")

	g := newGraph()
	g.addEdge(a, b, false)
	g.addEdge(b, a, false)

	if _, ok := g.TopoOrder(); ok {
		t.Fatal("expected TopoOrder to report a cycle")
	}
}

func TestGraphEdgesInInsertionOrder(t *testing.T) {
	a := model.NewEntityID("A")
	b := model.NewEntityID("B")
	c := model.NewEntityID("C")

	g := newGraph()
	g.addEdge(a, b, false)
	g.addEdge(a, c, true)

	edges := g.Edges(a)
	if len(edges) != 2 {
		t.Fatalf("expected 2 edges, got %d", len(edges))
	}
	if edges[0].To.Key() != b.Key() || edges[1].To.Key() != c.Key() {
		t.Fatalf("expected insertion order b, c, got %v", edges)
	}
	if edges[1].BreaksCycle != true {
		t.Fatalf("expected second edge to carry BreaksCycle=true")
	}
}
