package view

import (
	"fmt"

	"github.com/xapi-project/xapi/internal/model"
)

type subViewError struct{ id model.EntityID }

func (e *subViewError) Error() string {
	return fmt.Sprintf("view: %q does not address a namespace", e.id.String())
}

// SubView is a View narrowed to a specific sub-namespace, carrying its own
// root id and its own transforms (spec §4.4). A generator emitting one
// target-language file per source namespace can narrow to a SubView per
// file; the bundled generators walk namespaces from the root instead.
type SubView struct {
	rootID model.EntityID
	ns     *model.Namespace
	xf     Transforms
}

// RootID returns the fully-qualified id this SubView is rooted at.
func (s *SubView) RootID() model.EntityID { return s.rootID }

// Namespace returns a view of the narrowed namespace.
func (s *SubView) Namespace() *Namespace {
	return &Namespace{target: s.ns, xf: &s.xf}
}

func (s *SubView) WithNamespaceTransform(x NamespaceTransform) *SubView {
	return &SubView{rootID: s.rootID, ns: s.ns, xf: s.xf.withNamespace(x)}
}

func (s *SubView) WithDtoTransform(x DtoTransform) *SubView {
	return &SubView{rootID: s.rootID, ns: s.ns, xf: s.xf.withDto(x)}
}

func (s *SubView) WithRpcTransform(x RpcTransform) *SubView {
	return &SubView{rootID: s.rootID, ns: s.ns, xf: s.xf.withRpc(x)}
}

func (s *SubView) WithEnumTransform(x EnumTransform) *SubView {
	return &SubView{rootID: s.rootID, ns: s.ns, xf: s.xf.withEnum(x)}
}

func (s *SubView) WithTypeAliasTransform(x TypeAliasTransform) *SubView {
	return &SubView{rootID: s.rootID, ns: s.ns, xf: s.xf.withTypeAlias(x)}
}

func (s *SubView) WithFieldTransform(x FieldTransform) *SubView {
	return &SubView{rootID: s.rootID, ns: s.ns, xf: s.xf.withField(x)}
}

func (s *SubView) WithEntityIdTransform(x EntityIdTransform) *SubView {
	return &SubView{rootID: s.rootID, ns: s.ns, xf: s.xf.withEntityID(x)}
}

func (s *SubView) WithTypeRefTransform(x TypeRefTransform) *SubView {
	return &SubView{rootID: s.rootID, ns: s.ns, xf: s.xf.withTypeRef(x)}
}
