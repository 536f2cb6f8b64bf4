package view

import "github.com/xapi-project/xapi/internal/model"

// TypeAlias is a view of a model.TypeAlias.
type TypeAlias struct {
	target *model.TypeAlias
	xf     *Transforms
}

func (t *TypeAlias) Name() string {
	return applyName(t.xf.typeAlias, func(x TypeAliasTransform, s *string) { x.Name(s) }, t.target.Name)
}

// TargetType returns a view of the aliased type.
func (t *TypeAlias) TargetType() *Type {
	return &Type{target: &t.target.TargetType, xf: t.xf}
}

func (t *TypeAlias) Attributes() Attributes {
	return Attributes{target: t.target.Attributes, xf: t.xf}
}
