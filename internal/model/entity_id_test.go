package model

import "testing"

func TestEntityIDRoundTrip(t *testing.T) {
	id := NewEntityID("ns1", "ns2", "Dto")
	if got, want := id.String(), "ns1.ns2.Dto"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
	parsed, err := ParseEntityID(id.String())
	if err != nil {
		t.Fatalf("ParseEntityID: %v", err)
	}
	if !parsed.Equal(id) {
		t.Fatalf("parsed %v != original %v", parsed, id)
	}
}

func TestEntityIDQualifiedString(t *testing.T) {
	id := QualifiedEntityID(
		Segment{Kind: KindNamespace, Name: "ns1"},
		Segment{Kind: KindDto, Name: "Dto"},
	)
	if got, want := id.String(), "ns:ns1.dto:Dto"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
	if !id.IsQualified() {
		t.Fatal("expected IsQualified to be true")
	}
}

func TestEntityIDPushBackDoesNotMutateOriginal(t *testing.T) {
	base := NewEntityID("a")
	extended := base.PushBack(KindDto, "B")
	if base.Len() != 1 {
		t.Fatalf("base.Len() = %d, want 1 (PushBack must not mutate base)", base.Len())
	}
	if extended.Len() != 2 {
		t.Fatalf("extended.Len() = %d, want 2", extended.Len())
	}
}

func TestEntityIDPopFrontEmpty(t *testing.T) {
	var id EntityID
	if _, _, ok := id.PopFront(); ok {
		t.Fatal("PopFront on empty id should report ok=false")
	}
}

func TestEntityIDParent(t *testing.T) {
	id := NewEntityID("a", "b", "c")
	parent, ok := id.Parent()
	if !ok {
		t.Fatal("expected ok=true")
	}
	if got, want := parent.String(), "a.b"; got != want {
		t.Fatalf("Parent().String() = %q, want %q", got, want)
	}
	root := EntityID{}
	if _, ok := root.Parent(); ok {
		t.Fatal("root namespace should have no parent (invariant 5)")
	}
}
