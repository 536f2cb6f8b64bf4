package output

import (
	"strings"

	"github.com/xapi-project/xapi/internal/model"
)

// Buffer accumulates every write into a single in-memory string, ignoring
// chunk boundaries. Used by tests and by callers that want the whole
// generated text as one value.
type Buffer struct {
	b strings.Builder
}

func (o *Buffer) StartChunk(*model.ChunkMetadata) {}
func (o *Buffer) EndChunk(*model.ChunkMetadata)   {}

func (o *Buffer) WriteString(s string) { o.b.WriteString(s) }
func (o *Buffer) WriteChar(c rune)     { o.b.WriteRune(c) }
func (o *Buffer) Newline()             { o.b.WriteByte('\n') }

// String returns everything written so far.
func (o *Buffer) String() string { return o.b.String() }
