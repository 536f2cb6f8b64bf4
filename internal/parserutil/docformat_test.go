package parserutil_test

import (
	"strings"
	"testing"

	"github.com/xapi-project/xapi/internal/parserutil"
)

func TestFormatDocCommentSingleParagraph(t *testing.T) {
	lines := parserutil.FormatDocComment("Fetches a widget by id.")
	got := strings.Join(lines, "\n")
	if !strings.Contains(got, "Fetches a widget by id.") {
		t.Fatalf("FormatDocComment = %q, want it to contain the paragraph text", got)
	}
}

func TestFormatDocCommentListItems(t *testing.T) {
	lines := parserutil.FormatDocComment("- first\n- second")
	joined := strings.Join(lines, "|")
	if !strings.Contains(joined, "first") || !strings.Contains(joined, "second") {
		t.Fatalf("FormatDocComment = %q, want both list items present", joined)
	}
}

func TestFormatDocCommentFencedCodeBlock(t *testing.T) {
	md := "```\nlet x = 1;\n```"
	lines := parserutil.FormatDocComment(md)
	found := false
	for _, l := range lines {
		if l == "let x = 1;" {
			found = true
		}
	}
	if !found {
		t.Fatalf("FormatDocComment = %v, want a line with the code block body", lines)
	}
}

func TestFormatDocCommentNoTrailingBlankLine(t *testing.T) {
	lines := parserutil.FormatDocComment("just one line")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		t.Fatalf("FormatDocComment left a trailing blank line: %v", lines)
	}
}
