package output_test

import (
	"testing"

	"github.com/xapi-project/xapi/internal/output"
)

func TestBufferAccumulatesAcrossChunks(t *testing.T) {
	var o output.Buffer
	o.StartChunk(nil)
	o.WriteString("hello")
	o.WriteChar(' ')
	o.Newline()
	o.EndChunk(nil)
	o.StartChunk(nil)
	o.WriteString("world")
	o.EndChunk(nil)

	if got, want := o.String(), "hello \nworld"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}
