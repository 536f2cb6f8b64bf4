package view

import "github.com/xapi-project/xapi/internal/model"

// Enum is a view of a model.Enum.
type Enum struct {
	target *model.Enum
	xf     *Transforms
}

func (e *Enum) Name() string {
	return applyName(e.xf.enum, func(x EnumTransform, s *string) { x.Name(s) }, e.target.Name)
}

// EnumValue is a view of a model.EnumValue. Enum values have no dedicated
// Transform (spec §4.4 lists none): Name and Number are copied directly, and
// the value's Attributes are not exposed through the view layer.
type EnumValue struct {
	Name   string
	Number model.EnumValueNumber
}

func (e *Enum) Values() []EnumValue {
	out := make([]EnumValue, len(e.target.Values))
	for i, v := range e.target.Values {
		out[i] = EnumValue{Name: v.Name, Number: v.Number}
	}
	return out
}

func (e *Enum) Attributes() Attributes {
	return Attributes{target: e.target.Attributes, xf: e.xf}
}
