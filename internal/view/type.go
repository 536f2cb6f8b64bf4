package view

import (
	"strings"

	"github.com/xapi-project/xapi/internal/model"
)

// Type is a view of a model.Type.
type Type struct {
	target *model.Type
	xf     *Transforms
}

func (t *Type) Kind() model.TypeKind { return t.target.Kind }

// ApiPath returns the referenced entity's path when Kind is TypeApi, with
// any TypeRefTransform applied.
func (t *Type) ApiPath() []string {
	segs := t.target.ApiID.Segments()
	names := make([]string, len(segs))
	for i, s := range segs {
		names[i] = s.Name
	}
	return applyPath(t.xf.typeRef, func(x TypeRefTransform, p *[]string) { x.Path(p) }, names)
}

// ApiPathString renders ApiPath joined with ".".
func (t *Type) ApiPathString() string {
	return strings.Join(t.ApiPath(), ".")
}

func (t *Type) ApiSemantics() model.Semantics { return t.target.ApiSemantics }

func (t *Type) Elem() *Type {
	if t.target.Elem == nil {
		return nil
	}
	return &Type{target: t.target.Elem, xf: t.xf}
}

func (t *Type) Key() *Type {
	if t.target.Key == nil {
		return nil
	}
	return &Type{target: t.target.Key, xf: t.xf}
}

func (t *Type) Value() *Type {
	if t.target.Value == nil {
		return nil
	}
	return &Type{target: t.target.Value, xf: t.xf}
}

func (t *Type) UserName() string { return t.target.UserName }
