// Package input implements the chunk-sourcing side of the pipeline (spec
// §6.1): an Input exposes source chunks one at a time in a stable order,
// each paired with the namespace path its parser output should be grafted
// under.
package input

import "github.com/xapi-project/xapi/internal/model"

// Input exposes source chunks one at a time. NextChunk returns ok=false
// once every chunk has been consumed.
type Input interface {
	NextChunk() (meta model.ChunkMetadata, text string, ok bool)
}

// rootNamespaceFiles is the language-specific convention (spec §6.1) under
// which a file maps to its parent directory's namespace rather than
// contributing a namespace segment of its own.
var rootNamespaceFiles = map[string]bool{
	"mod.rs":      true,
	"lib.rs":      true,
	"index.ts":    true,
	"__init__.py": true,
}

// IsRootNamespaceFile reports whether base (a file's base name) is one of
// the recognized root-namespace markers.
func IsRootNamespaceFile(base string) bool {
	return rootNamespaceFiles[base]
}
