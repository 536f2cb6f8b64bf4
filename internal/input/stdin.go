package input

import (
	"io"
	"os"

	"github.com/xapi-project/xapi/internal/apierr"
	"github.com/xapi-project/xapi/internal/model"
)

// Stdin is a single-chunk Input that pulls all available data from stdin
// immediately on construction.
type Stdin struct {
	text     string
	consumed bool
}

// NewStdin reads os.Stdin to completion.
func NewStdin() (*Stdin, error) {
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil, &apierr.InputError{Path: "stdin", Err: err}
	}
	return &Stdin{text: string(data)}, nil
}

func (s *Stdin) NextChunk() (model.ChunkMetadata, string, bool) {
	if s.consumed {
		return model.ChunkMetadata{}, "", false
	}
	s.consumed = true
	return model.ChunkMetadata{}, s.text, true
}
