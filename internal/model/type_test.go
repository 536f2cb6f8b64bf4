package model

import "testing"

func TestBreaksCycle(t *testing.T) {
	cases := []struct {
		name string
		t    Type
		want bool
	}{
		{"value api", ApiType(NewEntityID("Foo"), SemanticsValue), false},
		{"ref api", ApiType(NewEntityID("Foo"), SemanticsRef), true},
		{"mut api", ApiType(NewEntityID("Foo"), SemanticsMut), true},
		{"optional", OptionalType(Primitive(TypeString)), true},
		{"primitive", Primitive(TypeBool), false},
		{"array", ArrayType(Primitive(TypeBool)), false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.t.BreaksCycle(); got != c.want {
				t.Errorf("BreaksCycle() = %v, want %v", got, c.want)
			}
		})
	}
}

func TestWalkApiRefs(t *testing.T) {
	inner := ApiType(NewEntityID("Inner"), SemanticsValue)
	outer := MapType(Primitive(TypeString), ArrayType(OptionalType(inner)))

	var found []string
	outer.WalkApiRefs(func(ref *Type) {
		found = append(found, ref.ApiID.String())
	})

	if len(found) != 1 || found[0] != "Inner" {
		t.Fatalf("WalkApiRefs found %v, want [Inner]", found)
	}
}

func TestWalkApiRefsVisitsEveryBranch(t *testing.T) {
	m := MapType(
		ApiType(NewEntityID("Key"), SemanticsValue),
		ApiType(NewEntityID("Value"), SemanticsValue),
	)
	var found []string
	m.WalkApiRefs(func(ref *Type) { found = append(found, ref.ApiID.String()) })
	if len(found) != 2 {
		t.Fatalf("expected 2 refs, got %v", found)
	}
}
