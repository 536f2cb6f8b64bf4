package input

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/xapi-project/xapi/internal/apierr"
	"github.com/xapi-project/xapi/internal/model"
)

// Glob is a filesystem Input that reads every file under root matching
// pattern (a doublestar glob, e.g. "**/*.rs"). Every match is read eagerly
// at construction, in lexical path order, so NextChunk itself cannot fail
// (mirrors the source's Glob::new eagerly building a FileSet).
type Glob struct {
	chunks []chunk
	next   int
}

// NewGlob matches pattern against files under root and reads them all.
func NewGlob(root, pattern string) (*Glob, error) {
	fsys := os.DirFS(root)
	matches, err := doublestar.Glob(fsys, pattern)
	if err != nil {
		return nil, &apierr.InputError{Path: pattern, Err: err}
	}
	sort.Strings(matches)

	chunks := make([]chunk, 0, len(matches))
	for _, relPath := range matches {
		text, err := os.ReadFile(filepath.Join(root, relPath))
		if err != nil {
			return nil, &apierr.InputError{Path: relPath, Err: err}
		}
		chunks = append(chunks, chunk{relPath: relPath, text: string(text)})
	}
	return &Glob{chunks: chunks}, nil
}

func (g *Glob) NextChunk() (model.ChunkMetadata, string, bool) {
	if g.next >= len(g.chunks) {
		return model.ChunkMetadata{}, "", false
	}
	cur := g.chunks[g.next]
	g.next++
	return model.ChunkMetadata{
		RelativeFilePath: cur.relPath,
		RootNamespace:    deriveRootNamespace(cur.relPath),
	}, cur.text, true
}
