package view

import "github.com/xapi-project/xapi/internal/model"

// Attributes is a view of a model.Attributes.
type Attributes struct {
	target model.Attributes
	xf     *Transforms
}

func (a Attributes) Comments() []model.Comment { return a.target.Comments }

func (a Attributes) Docs() []model.Comment { return a.target.Docs() }

func (a Attributes) User() []model.UserAttribute { return a.target.User }

// EntityID returns a view of this entity's own fully-qualified id, subject
// to any registered EntityIdTransform.
func (a Attributes) EntityID() EntityID {
	return EntityID{target: a.target.EntityID, xf: a.xf}
}
