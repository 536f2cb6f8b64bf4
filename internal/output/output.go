// Package output implements the stateful sink side of the pipeline (spec
// §6.3): a generator declares chunk boundaries as it writes, and an Output
// implementation decides where those bytes land.
package output

import "github.com/xapi-project/xapi/internal/model"

// Output is a stateful sink a Generator writes into. StartChunk/EndChunk
// bracket one logical output unit (typically one source namespace); a
// FileSet implementation uses the boundary to route text to a file.
type Output interface {
	StartChunk(meta *model.ChunkMetadata)
	WriteString(s string)
	WriteChar(c rune)
	Newline()
	EndChunk(meta *model.ChunkMetadata)
}
