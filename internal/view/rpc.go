package view

import "github.com/xapi-project/xapi/internal/model"

// Rpc is a view of a model.Rpc.
type Rpc struct {
	target *model.Rpc
	xf     *Transforms
}

func (r *Rpc) Name() string {
	return applyName(r.xf.rpc, func(x RpcTransform, s *string) { x.Name(s) }, r.target.Name)
}

// Params returns every visible parameter, wrapped.
func (r *Rpc) Params() []*Field {
	var out []*Field
	for _, p := range r.target.Params {
		if !fieldVisible(r.xf.field, p) {
			continue
		}
		out = append(out, &Field{target: p, xf: r.xf})
	}
	return out
}

// ReturnType returns a view of the return type, if any.
func (r *Rpc) ReturnType() (*Type, bool) {
	if r.target.ReturnType == nil {
		return nil, false
	}
	return &Type{target: r.target.ReturnType, xf: r.xf}, true
}

func (r *Rpc) Attributes() Attributes {
	return Attributes{target: r.target.Attributes, xf: r.xf}
}
