// Package builder accumulates partial APIs deposited by parsers and turns
// them into a validated model.Model: merging namespaces contributed by
// separate chunks, qualifying every unqualified reference, computing the
// dependency graph, and enforcing spec invariants (spec §4.2, §4.3).
package builder

import (
	"fmt"

	"github.com/xapi-project/xapi/internal/model"
)

// PreValidatePrint selects the optional debug re-emission hook run just
// before validation (spec §4.3, "optional debug print hook").
type PreValidatePrint int

const (
	PreValidatePrintNone PreValidatePrint = iota
	PreValidatePrintNative
	PreValidatePrintDebug
)

// Config holds Builder-wide options.
type Config struct {
	PreValidatePrint PreValidatePrint
}

// chunkNamespace is one chunk's partial tree, grafted under RootNamespace.
type chunkNamespace struct {
	meta model.ChunkMetadata
	root *model.Namespace
}

// Builder accumulates parser output across chunks and builds a model.Model.
// The zero value is ready to use.
type Builder struct {
	Config Config

	chunks []chunkNamespace
	errs   []error
}

// New returns a Builder ready to accept appended chunks.
func New(cfg Config) *Builder {
	return &Builder{Config: cfg}
}

// Append grafts a parser's partial namespace tree under the chunk's derived
// root path (spec §4.3 step 1, "Collect"). Parsers must not mutate root or
// any of its descendants after calling Append: the Builder takes ownership
// of the tree for merge and qualification.
func (b *Builder) Append(meta model.ChunkMetadata, root *model.Namespace) {
	b.chunks = append(b.chunks, chunkNamespace{meta: meta, root: root})
}

// Errors returns every error accumulated so far across Append and Build.
func (b *Builder) Errors() []error { return b.errs }

func (b *Builder) addErrf(format string, args ...any) {
	b.errs = append(b.errs, fmt.Errorf(format, args...))
}

// Build runs merge, qualify, dependency-graph, and validate in sequence
// (spec §4.3). It does not stop at the first error: merge and qualify each
// accumulate into Errors, and so does validate, but validate (and the
// pre-validate print) is skipped once merge or qualify recorded an error.
// Build returns a nil Model whenever any error occurred, including errors
// accumulated before this call.
func (b *Builder) Build() (*model.Model, *Graph) {
	root := b.merge()

	graph := newGraph()
	b.qualify(root, graph)

	if len(b.errs) > 0 {
		return nil, nil
	}

	switch b.Config.PreValidatePrint {
	case PreValidatePrintNative:
		b.debugPrintNative(root)
	case PreValidatePrintDebug:
		b.debugPrintDebug(root)
	}

	m := &model.Model{Root: root, Chunks: chunkMetas(b.chunks)}
	b.validate(m, graph)
	if len(b.errs) > 0 {
		return nil, nil
	}
	return m, graph
}

func chunkMetas(chunks []chunkNamespace) []model.ChunkMetadata {
	out := make([]model.ChunkMetadata, len(chunks))
	for i, c := range chunks {
		out[i] = c.meta
	}
	return out
}
