package input_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/xapi-project/xapi/internal/input"
)

func TestGlobReadsMatchesInLexicalOrder(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "b"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(filepath.Join(dir, "a"), 0o755); err != nil {
		t.Fatal(err)
	}
	write := func(rel, text string) {
		if err := os.WriteFile(filepath.Join(dir, rel), []byte(text), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	write("b/mod.rs", "struct Bar {}")
	write("a/mod.rs", "struct Foo {}")
	write("a/notes.txt", "ignored")

	g, err := input.NewGlob(dir, "**/*.rs")
	if err != nil {
		t.Fatalf("NewGlob: %v", err)
	}

	var paths []string
	for {
		meta, _, ok := g.NextChunk()
		if !ok {
			break
		}
		paths = append(paths, meta.RelativeFilePath)
	}
	if got, want := paths, []string{"a/mod.rs", "b/mod.rs"}; len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("paths = %v, want %v (lexical order, non-matching files excluded)", got, want)
	}
}

func TestGlobNoMatches(t *testing.T) {
	dir := t.TempDir()
	g, err := input.NewGlob(dir, "**/*.rs")
	if err != nil {
		t.Fatalf("NewGlob: %v", err)
	}
	if _, _, ok := g.NextChunk(); ok {
		t.Fatal("expected no chunks when nothing matches")
	}
}

func TestGlobInvalidPattern(t *testing.T) {
	dir := t.TempDir()
	if _, err := input.NewGlob(dir, "["); err == nil {
		t.Fatal("expected an error for a malformed glob pattern")
	}
}
