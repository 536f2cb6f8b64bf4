package builder_test

import (
	"testing"

	"github.com/xapi-project/xapi/internal/apierr"
	"github.com/xapi-project/xapi/internal/builder"
	"github.com/xapi-project/xapi/internal/config"
	"github.com/xapi-project/xapi/internal/input"
	"github.com/xapi-project/xapi/internal/model"
	"github.com/xapi-project/xapi/internal/refparser"
)

func mustBuild(t *testing.T, in input.Input) (*model.Model, *builder.Builder) {
	t.Helper()
	b := builder.New(builder.Config{})
	errs := refparser.Parser{}.Parse(&config.ParserConfig{EnableParsePrivate: true}, in, b)
	for _, err := range errs {
		t.Fatalf("parse error: %v", err)
	}
	m, _ := b.Build()
	return m, b
}

func TestSingleDtoField(t *testing.T) {
	src := input.NewBuffer("mod.rs", "struct Foo { x: string }")
	m, b := mustBuild(t, src)
	if errs := b.Errors(); len(errs) > 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	foo := m.Root.Dto("Foo")
	if foo == nil {
		t.Fatal("expected Dto Foo at root")
	}
	f := foo.Field("x")
	if f == nil || f.Type.Kind != model.TypeString {
		t.Fatalf("expected field x: string, got %+v", f)
	}
}

func TestCrossNamespaceReference(t *testing.T) {
	cb := input.NewChunkBuffer().
		Add("a/mod.rs", "struct Foo {}").
		Add("b/mod.rs", "struct Bar { f: a.Foo }")
	m, b := mustBuild(t, cb)
	if errs := b.Errors(); len(errs) > 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	nsB := m.Root.Namespace("b")
	if nsB == nil {
		t.Fatal("expected namespace b")
	}
	bar := nsB.Dto("Bar")
	if bar == nil {
		t.Fatal("expected Dto Bar")
	}
	f := bar.Field("f")
	if f == nil || f.Type.Kind != model.TypeApi {
		t.Fatalf("expected api-typed field f, got %+v", f)
	}
	if got, want := f.Type.ApiID.String(), "ns:a.dto:Foo"; got != want {
		t.Fatalf("resolved reference = %q, want %q", got, want)
	}
}

func TestNamespaceMergeAcrossChunks(t *testing.T) {
	cb := input.NewChunkBuffer().
		Add("a/mod.rs", "struct Foo {}").
		Add("a/lib.rs", "struct Bar {}")
	m, b := mustBuild(t, cb)
	if errs := b.Errors(); len(errs) > 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	ns := m.Root.Namespace("a")
	if ns == nil {
		t.Fatal("expected namespace a")
	}
	if ns.Dto("Foo") == nil || ns.Dto("Bar") == nil {
		t.Fatalf("expected both Foo and Bar merged into namespace a, got %+v", ns.Dtos)
	}
}

func TestUnresolvedReference(t *testing.T) {
	src := input.NewBuffer("mod.rs", "struct Bar { f: Missing }")
	_, b := mustBuild(t, src)
	errs := b.Errors()
	if len(errs) == 0 {
		t.Fatal("expected an UnresolvedReference error")
	}
	var found bool
	for _, err := range errs {
		if _, ok := err.(*apierr.UnresolvedReference); ok {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected *apierr.UnresolvedReference among errors, got %v", errs)
	}
}

func TestCyclicValueTypeRejected(t *testing.T) {
	src := input.NewBuffer("mod.rs", "struct A { b: B } struct B { a: A }")
	_, b := mustBuild(t, src)
	errs := b.Errors()
	if len(errs) == 0 {
		t.Fatal("expected a CyclicValueType error")
	}
	var found bool
	for _, err := range errs {
		if _, ok := err.(*apierr.CyclicValueType); ok {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected *apierr.CyclicValueType among errors, got %v", errs)
	}
}

func TestOptionalBreaksCycle(t *testing.T) {
	src := input.NewBuffer("mod.rs", "struct A { b: B } struct B { a: A? }")
	m, b := mustBuild(t, src)
	if errs := b.Errors(); len(errs) > 0 {
		t.Fatalf("unexpected errors (Optional should break the cycle): %v", errs)
	}
	if m == nil {
		t.Fatal("expected a built model")
	}
}

func TestDuplicateEnumValueRejected(t *testing.T) {
	src := input.NewBuffer("mod.rs", "enum E { A = 1, B = 1 }")
	_, b := mustBuild(t, src)
	errs := b.Errors()
	if len(errs) == 0 {
		t.Fatal("expected a DuplicateEnumValue error")
	}
	var found bool
	for _, err := range errs {
		if _, ok := err.(*apierr.DuplicateEnumValue); ok {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected *apierr.DuplicateEnumValue among errors, got %v", errs)
	}
}

func TestMergeConflictOnDuplicateDtoName(t *testing.T) {
	cb := input.NewChunkBuffer().
		Add("a/mod.rs", "struct Foo {}").
		Add("a/lib.rs", "struct Foo {}")
	_, b := mustBuild(t, cb)
	errs := b.Errors()
	if len(errs) == 0 {
		t.Fatal("expected a MergeConflict error")
	}
	var found bool
	for _, err := range errs {
		if _, ok := err.(*apierr.MergeConflict); ok {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected *apierr.MergeConflict among errors, got %v", errs)
	}
}

func TestEnumAutoNumberingWithExplicitReset(t *testing.T) {
	src := input.NewBuffer("mod.rs", "enum E { A, B = 5, C, D = 2, E }")
	m, b := mustBuild(t, src)
	if errs := b.Errors(); len(errs) > 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	e := m.Root.Enum("E")
	if e == nil {
		t.Fatal("expected enum E")
	}
	want := map[string]int64{"A": 0, "B": 5, "C": 6, "D": 2, "E": 3}
	for _, v := range e.Values {
		if want[v.Name] != v.Number {
			t.Errorf("value %s = %d, want %d", v.Name, v.Number, want[v.Name])
		}
	}
}
