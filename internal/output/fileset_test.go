package output_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/xapi-project/xapi/internal/model"
	"github.com/xapi-project/xapi/internal/output"
)

func TestFileSetWritesOneFilePerChunk(t *testing.T) {
	dir := t.TempDir()
	fs := output.NewFileSet(dir)

	fs.StartChunk(&model.ChunkMetadata{RelativeFilePath: "a/foo.ts"})
	fs.WriteString("export interface Foo {}")
	fs.Newline()
	fs.EndChunk(&model.ChunkMetadata{RelativeFilePath: "a/foo.ts"})

	fs.StartChunk(&model.ChunkMetadata{RelativeFilePath: "b/bar.ts"})
	fs.WriteString("export interface Bar {}")
	fs.EndChunk(&model.ChunkMetadata{RelativeFilePath: "b/bar.ts"})

	if errs := fs.Errors(); len(errs) > 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}

	got, err := os.ReadFile(filepath.Join(dir, "a/foo.ts"))
	if err != nil {
		t.Fatalf("reading a/foo.ts: %v", err)
	}
	if string(got) != "export interface Foo {}\n" {
		t.Fatalf("a/foo.ts = %q", got)
	}

	got, err = os.ReadFile(filepath.Join(dir, "b/bar.ts"))
	if err != nil {
		t.Fatalf("reading b/bar.ts: %v", err)
	}
	if string(got) != "export interface Bar {}" {
		t.Fatalf("b/bar.ts = %q", got)
	}
}

func TestFileSetWriteBeforeStartChunkIsNoop(t *testing.T) {
	dir := t.TempDir()
	fs := output.NewFileSet(dir)
	fs.WriteString("dropped")
	fs.Newline()
	fs.WriteChar('x')
	if errs := fs.Errors(); len(errs) > 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
}
