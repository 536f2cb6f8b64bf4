package view

import "github.com/xapi-project/xapi/internal/model"

// View is a read-only projection of a model.Model rooted at the model's
// root namespace. Registering a transform (the With* methods) returns a
// new View that shares the underlying Model and layers the transform on
// top; the Model itself is never mutated.
type View struct {
	m  *model.Model
	xf Transforms
}

// New returns a View over m with no transforms registered.
func New(m *model.Model) *View {
	return &View{m: m}
}

func (v *View) WithNamespaceTransform(x NamespaceTransform) *View {
	return &View{m: v.m, xf: v.xf.withNamespace(x)}
}

func (v *View) WithDtoTransform(x DtoTransform) *View {
	return &View{m: v.m, xf: v.xf.withDto(x)}
}

func (v *View) WithRpcTransform(x RpcTransform) *View {
	return &View{m: v.m, xf: v.xf.withRpc(x)}
}

func (v *View) WithEnumTransform(x EnumTransform) *View {
	return &View{m: v.m, xf: v.xf.withEnum(x)}
}

func (v *View) WithTypeAliasTransform(x TypeAliasTransform) *View {
	return &View{m: v.m, xf: v.xf.withTypeAlias(x)}
}

func (v *View) WithFieldTransform(x FieldTransform) *View {
	return &View{m: v.m, xf: v.xf.withField(x)}
}

func (v *View) WithEntityIdTransform(x EntityIdTransform) *View {
	return &View{m: v.m, xf: v.xf.withEntityID(x)}
}

func (v *View) WithTypeRefTransform(x TypeRefTransform) *View {
	return &View{m: v.m, xf: v.xf.withTypeRef(x)}
}

func (v *View) WithAttributeTransform(x AttributeTransform) *View {
	return &View{m: v.m, xf: v.xf.withAttribute(x)}
}

// Root returns a view of the model's root namespace.
func (v *View) Root() *Namespace {
	return &Namespace{target: v.m.Root, xf: &v.xf}
}

// SubView narrows this View to the namespace addressed by id, carrying its
// own root id and the same transforms (spec §4.4, "sub-views").
func (v *View) SubView(id model.EntityID) (*SubView, error) {
	e, ok := v.m.FindEntity(id)
	if !ok || e.Kind != model.KindNamespace {
		return nil, &subViewError{id: id}
	}
	return &SubView{rootID: id, ns: e.Namespace, xf: v.xf}, nil
}
