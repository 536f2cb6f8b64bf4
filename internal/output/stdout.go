package output

import (
	"bufio"
	"io"

	"github.com/xapi-project/xapi/internal/model"
)

// Stdout writes every chunk straight through to an underlying writer
// (typically os.Stdout), ignoring chunk boundaries.
type Stdout struct {
	w *bufio.Writer
}

// NewStdout wraps w for buffered writing. Callers must call Flush when done.
func NewStdout(w io.Writer) *Stdout {
	return &Stdout{w: bufio.NewWriter(w)}
}

func (o *Stdout) StartChunk(*model.ChunkMetadata) {}
func (o *Stdout) EndChunk(*model.ChunkMetadata)   {}

func (o *Stdout) WriteString(s string) { _, _ = o.w.WriteString(s) }
func (o *Stdout) WriteChar(c rune)     { _, _ = o.w.WriteRune(c) }
func (o *Stdout) Newline()             { _ = o.w.WriteByte('\n') }

// Flush flushes buffered output to the underlying writer.
func (o *Stdout) Flush() error { return o.w.Flush() }
