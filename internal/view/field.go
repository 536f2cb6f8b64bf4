package view

import "github.com/xapi-project/xapi/internal/model"

// Field is a view of a model.Field.
type Field struct {
	target *model.Field
	xf     *Transforms
}

func (f *Field) Name() string {
	return applyName(f.xf.field, func(x FieldTransform, s *string) { x.Name(s) }, f.target.Name)
}

func (f *Field) Type() *Type {
	return &Type{target: &f.target.Type, xf: f.xf}
}

func (f *Field) IsStatic() bool { return f.target.IsStatic }

func (f *Field) Attributes() Attributes {
	return Attributes{target: f.target.Attributes, xf: f.xf}
}
