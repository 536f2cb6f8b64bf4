package parserutil

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// FormatDocComment renders a doc comment's Markdown source as plain text
// lines, one block element (paragraph, list item, code line) per line,
// with blank lines preserved between blocks. Generators that emit a
// target language's native doc-comment syntax (e.g. tsgen's "/** ... */")
// wrap these lines rather than re-deriving Markdown structure themselves.
func FormatDocComment(markdown string) []string {
	var lines []string
	var cur strings.Builder

	flush := func() {
		if cur.Len() > 0 {
			lines = append(lines, cur.String())
			cur.Reset()
		}
	}

	src := []byte(markdown)
	doc := goldmark.DefaultParser().Parse(text.NewReader(src))

	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		switch n.Kind() {
		case ast.KindParagraph, ast.KindListItem, ast.KindHeading:
			if !entering {
				flush()
				lines = append(lines, "")
			}
		case ast.KindText:
			if entering {
				t := n.(*ast.Text)
				cur.Write(t.Segment.Value(src))
				if t.SoftLineBreak() || t.HardLineBreak() {
					flush()
				}
			}
		case ast.KindCodeBlock, ast.KindFencedCodeBlock:
			if entering {
				lines = append(lines, strings.Split(strings.TrimRight(string(n.Text(src)), "\n"), "\n")...)
				lines = append(lines, "")
			}
		}
		return ast.WalkContinue, nil
	})
	flush()

	// Trim a single trailing blank line left by the last block's separator.
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
