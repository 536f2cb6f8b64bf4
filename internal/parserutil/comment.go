// Package parserutil collects the parser-facing helpers spec §4.5 calls
// out as shared building blocks for language parsers: a comment grammar
// parametric over line/block delimiters, a visibility filter, and an
// identifier matcher with precise error messages. None of this is part of
// the core's semantics; it exists so every language parser does not
// reinvent the same handful of lexical rules.
package parserutil

import "strings"

// CommentGrammar recognizes line and (optionally) block comments for one
// source language, classifying each as documentation or a regular comment
// based on a second marker character appended to the line/block opener
// (e.g. Rust's "///" doc vs "//" regular, both sharing the "//" opener).
type CommentGrammar struct {
	// LineOpener is the plain line-comment opener, e.g. "//".
	LineOpener string
	// LineDocOpener is the doc-comment line opener, e.g. "///". Checked
	// before LineOpener since it is always a superset prefix of it.
	LineDocOpener string
	// BlockOpener/BlockCloser bound a (possibly multi-line) block comment,
	// e.g. "/*" / "*/". Leave empty to disable block comments.
	BlockOpener, BlockCloser string
	// BlockDocOpener is the doc-comment block opener, e.g. "/**".
	BlockDocOpener string
}

// Comment is one recognized comment: its text (delimiters stripped,
// trimmed) and whether it was a doc comment.
type Comment struct {
	Text  string
	IsDoc bool
}

// Match attempts to recognize a comment starting at the beginning of s,
// returning the comment and the unconsumed remainder of s. ok is false if s
// does not start with any recognized comment opener.
func (g CommentGrammar) Match(s string) (c Comment, rest string, ok bool) {
	if g.LineDocOpener != "" && strings.HasPrefix(s, g.LineDocOpener) {
		return g.matchLine(s, g.LineDocOpener, true)
	}
	if g.LineOpener != "" && strings.HasPrefix(s, g.LineOpener) {
		return g.matchLine(s, g.LineOpener, false)
	}
	if g.BlockDocOpener != "" && strings.HasPrefix(s, g.BlockDocOpener) {
		return g.matchBlock(s, g.BlockDocOpener, true)
	}
	if g.BlockOpener != "" && strings.HasPrefix(s, g.BlockOpener) {
		return g.matchBlock(s, g.BlockOpener, false)
	}
	return Comment{}, s, false
}

func (g CommentGrammar) matchLine(s, opener string, isDoc bool) (Comment, string, bool) {
	body := s[len(opener):]
	if i := strings.IndexByte(body, '\n'); i >= 0 {
		return Comment{Text: strings.TrimSpace(body[:i]), IsDoc: isDoc}, body[i+1:], true
	}
	return Comment{Text: strings.TrimSpace(body), IsDoc: isDoc}, "", true
}

func (g CommentGrammar) matchBlock(s, opener string, isDoc bool) (Comment, string, bool) {
	body := s[len(opener):]
	end := strings.Index(body, g.BlockCloser)
	if end < 0 {
		return Comment{Text: strings.TrimSpace(body), IsDoc: isDoc}, "", true
	}
	return Comment{Text: strings.TrimSpace(body[:end]), IsDoc: isDoc}, body[end+len(g.BlockCloser):], true
}
