package view

import (
	"strings"

	"github.com/xapi-project/xapi/internal/model"
)

// EntityID is a view of a model.EntityID exposed as a reference to the
// entity's own identity (e.g. Attributes().EntityID()), rewritten by any
// registered EntityIdTransform.
type EntityID struct {
	target model.EntityID
	xf     *Transforms
}

// Path returns the plain segment names, with any EntityIdTransform applied.
func (id EntityID) Path() []string {
	segs := id.target.Segments()
	names := make([]string, len(segs))
	for i, s := range segs {
		names[i] = s.Name
	}
	return applyPath(id.xf.entityID, func(x EntityIdTransform, p *[]string) { x.Path(p) }, names)
}

// String renders Path joined with ".".
func (id EntityID) String() string {
	return strings.Join(id.Path(), ".")
}
