package model

// Model is the in-memory representation of a fully parsed and validated API
// (spec §3.6). Once the builder produces a Model, nothing in this package
// mutates it again: the view package borrows it read-only, and generators
// consume only a View.
type Model struct {
	// Root is the root namespace: empty Name, no parent (invariant 5).
	Root *Namespace
	// Chunks records every input chunk that contributed to this Model, in
	// contribution order, for diagnostics.
	Chunks []ChunkMetadata
}

// FindEntity resolves a fully-qualified EntityID against the Model root.
// Satisfies spec property P2: FindEntity(e.fully_qualified_id()) == e for
// every entity e in a built Model.
func (m *Model) FindEntity(id EntityID) (Entity, bool) {
	return m.Root.FindEntity(id)
}
