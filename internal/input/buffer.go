package input

import "github.com/xapi-project/xapi/internal/model"

// Buffer is a single in-memory chunk, useful for tests that hand a parser
// one fixed string.
type Buffer struct {
	RelativeFilePath string
	Text             string

	consumed bool
}

// NewBuffer returns a Buffer for text, deriving its root namespace from
// relPath the same way Glob does.
func NewBuffer(relPath, text string) *Buffer {
	return &Buffer{RelativeFilePath: relPath, Text: text}
}

func (b *Buffer) NextChunk() (model.ChunkMetadata, string, bool) {
	if b.consumed {
		return model.ChunkMetadata{}, "", false
	}
	b.consumed = true
	return model.ChunkMetadata{
		RelativeFilePath: b.RelativeFilePath,
		RootNamespace:    deriveRootNamespace(b.RelativeFilePath),
	}, b.Text, true
}

// chunk is one (path, text) pair shared by ChunkBuffer and Glob.
type chunk struct {
	relPath string
	text    string
}

// ChunkBuffer is a fixed, in-memory sequence of chunks, useful for tests
// exercising multi-chunk merge behavior without touching the filesystem.
type ChunkBuffer struct {
	chunks []chunk
	next   int
}

// NewChunkBuffer returns a ChunkBuffer with no chunks; use Add to append.
func NewChunkBuffer() *ChunkBuffer { return &ChunkBuffer{} }

// Add appends one chunk, in the order NextChunk will return it.
func (c *ChunkBuffer) Add(relPath, text string) *ChunkBuffer {
	c.chunks = append(c.chunks, chunk{relPath: relPath, text: text})
	return c
}

func (c *ChunkBuffer) NextChunk() (model.ChunkMetadata, string, bool) {
	if c.next >= len(c.chunks) {
		return model.ChunkMetadata{}, "", false
	}
	cur := c.chunks[c.next]
	c.next++
	return model.ChunkMetadata{
		RelativeFilePath: cur.relPath,
		RootNamespace:    deriveRootNamespace(cur.relPath),
	}, cur.text, true
}
