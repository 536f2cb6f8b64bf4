package output

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"github.com/xapi-project/xapi/internal/model"
)

// FileSet routes each StartChunk/EndChunk bracket to its own file under
// root, named after the chunk's RelativeFilePath. A generator emitting one
// target-language file per source namespace (spec §4.4) brackets each
// namespace with StartChunk/EndChunk; tsgen does so while walking the
// namespaces of the root view.
type FileSet struct {
	root string
	cur  *os.File
	buf  *bufio.Writer
	errs []error
}

// NewFileSet returns a FileSet rooted at dir.
func NewFileSet(dir string) *FileSet {
	return &FileSet{root: dir}
}

func (o *FileSet) StartChunk(meta *model.ChunkMetadata) {
	path := filepath.Join(o.root, meta.RelativeFilePath)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		o.errs = append(o.errs, fmt.Errorf("output: creating directory for %q: %w", path, err))
		return
	}
	f, err := os.Create(path)
	if err != nil {
		o.errs = append(o.errs, fmt.Errorf("output: creating %q: %w", path, err))
		return
	}
	o.cur = f
	o.buf = bufio.NewWriter(f)
}

func (o *FileSet) EndChunk(*model.ChunkMetadata) {
	if o.buf == nil {
		return
	}
	if err := o.buf.Flush(); err != nil {
		o.errs = append(o.errs, err)
	}
	if err := o.cur.Close(); err != nil {
		o.errs = append(o.errs, err)
	}
	o.cur = nil
	o.buf = nil
}

func (o *FileSet) WriteString(s string) {
	if o.buf == nil {
		return
	}
	_, _ = o.buf.WriteString(s)
}

func (o *FileSet) WriteChar(c rune) {
	if o.buf == nil {
		return
	}
	_, _ = o.buf.WriteRune(c)
}

func (o *FileSet) Newline() {
	if o.buf == nil {
		return
	}
	_ = o.buf.WriteByte('\n')
}

// Errors returns every I/O error encountered while writing.
func (o *FileSet) Errors() []error { return o.errs }
