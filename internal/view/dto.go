package view

import "github.com/xapi-project/xapi/internal/model"

// Dto is a view of a model.Dto.
type Dto struct {
	target *model.Dto
	xf     *Transforms
}

func (d *Dto) Name() string {
	return applyName(d.xf.dto, func(x DtoTransform, s *string) { x.Name(s) }, d.target.Name)
}

// Fields returns every visible field, wrapped.
func (d *Dto) Fields() []*Field {
	var out []*Field
	for _, f := range d.target.Fields {
		if !fieldVisible(d.xf.field, f) {
			continue
		}
		out = append(out, &Field{target: f, xf: d.xf})
	}
	return out
}

// Nested returns a view of the Dto's nested namespace, if it has one.
func (d *Dto) Nested() (*Namespace, bool) {
	if d.target.Nested == nil {
		return nil, false
	}
	return &Namespace{target: d.target.Nested, xf: d.xf}, true
}

func (d *Dto) Attributes() Attributes {
	return Attributes{target: d.target.Attributes, xf: d.xf}
}
