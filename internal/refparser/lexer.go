// Package refparser implements a small Rust-like reference syntax against
// the Builder append contract (spec §4.3, "interface exposed to parsers").
// It exists to exercise Builder, View, and the bundled generators
// end-to-end — it is not a production language frontend.
//
// Grammar (informal):
//
//	item       := comment* visibility? ("mod" | "struct" | "fn" | "enum" | "type") ...
//	mod        := "mod" ident "{" item* "}"
//	struct     := "struct" ident "{" field* "}" ("{" item* "}")?
//	field      := comment* visibility? ident ":" type ","?
//	fn         := "fn" ident "(" param* ")" ("->" type)? "{" ... "}"
//	enum       := "enum" ident "{" enum_value* "}"
//	enum_value := comment* ident ("=" int)? ","?
//	type_alias := "type" ident "=" type ";"
//	type       := primitive | "[" type "]" | type "?" | "map<" type "," type ">"
//	            | ("&" "mut"? )? path
//	path       := ident ("." ident)*
package refparser

import (
	"fmt"
	"unicode"

	"github.com/xapi-project/xapi/internal/parserutil"
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokIdent
	tokInt
	tokLBrace
	tokRBrace
	tokLParen
	tokRParen
	tokLBracket
	tokRBracket
	tokLAngle
	tokRAngle
	tokColon
	tokComma
	tokSemi
	tokEquals
	tokArrow
	tokQuestion
	tokAmp
	tokDot
)

type token struct {
	kind     tokenKind
	text     string
	comments []parserutil.Comment
	pos      int
}

var commentGrammar = parserutil.CommentGrammar{
	LineOpener:    "//",
	LineDocOpener: "///",
}

// primitiveKeywords are reserved as type primitives rather than identifiers
// when parsing a type expression.
var primitiveKeywords = map[string]bool{
	"bool": true, "string": true, "bytes": true, "usize": true,
	"u8": true, "u16": true, "u32": true, "u64": true, "u128": true,
	"i8": true, "i16": true, "i32": true, "i64": true, "i128": true,
	"f8": true, "f16": true, "f32": true, "f64": true, "f128": true,
}

type lexer struct {
	src    string
	pos    int
	tokens []token
}

func lex(src string) ([]token, error) {
	l := &lexer{src: src}
	var pending []parserutil.Comment
	for {
		l.skipSpace()
		if l.pos >= len(l.src) {
			l.tokens = append(l.tokens, token{kind: tokEOF, comments: pending, pos: l.pos})
			break
		}
		rest := l.src[l.pos:]
		if c, newRest, ok := commentGrammar.Match(rest); ok {
			pending = append(pending, c)
			l.pos += len(rest) - len(newRest)
			continue
		}
		start := l.pos
		r := rune(l.src[l.pos])
		switch {
		case r == '{':
			l.emit(tokLBrace, "{", start, &pending)
		case r == '}':
			l.emit(tokRBrace, "}", start, &pending)
		case r == '(':
			l.emit(tokLParen, "(", start, &pending)
		case r == ')':
			l.emit(tokRParen, ")", start, &pending)
		case r == '[':
			l.emit(tokLBracket, "[", start, &pending)
		case r == ']':
			l.emit(tokRBracket, "]", start, &pending)
		case r == '<':
			l.emit(tokLAngle, "<", start, &pending)
		case r == '>':
			l.emit(tokRAngle, ">", start, &pending)
		case r == ':':
			l.emit(tokColon, ":", start, &pending)
		case r == ',':
			l.emit(tokComma, ",", start, &pending)
		case r == ';':
			l.emit(tokSemi, ";", start, &pending)
		case r == '=':
			l.emit(tokEquals, "=", start, &pending)
		case r == '?':
			l.emit(tokQuestion, "?", start, &pending)
		case r == '&':
			l.emit(tokAmp, "&", start, &pending)
		case r == '.':
			l.emit(tokDot, ".", start, &pending)
		case r == '-' && l.pos+1 < len(l.src) && l.src[l.pos+1] == '>':
			l.pos++
			l.emit(tokArrow, "->", start, &pending)
		case unicode.IsDigit(r):
			l.lexInt(start, &pending)
		case unicode.IsLetter(r) || r == '_':
			l.lexIdent(start, &pending)
		default:
			return nil, fmt.Errorf("refparser: unexpected character %q at offset %d", r, l.pos)
		}
	}
	return l.tokens, nil
}

func (l *lexer) emit(kind tokenKind, text string, start int, pending *[]parserutil.Comment) {
	l.pos++
	l.tokens = append(l.tokens, token{kind: kind, text: text, comments: *pending, pos: start})
	*pending = nil
}

func (l *lexer) lexInt(start int, pending *[]parserutil.Comment) {
	for l.pos < len(l.src) && unicode.IsDigit(rune(l.src[l.pos])) {
		l.pos++
	}
	l.tokens = append(l.tokens, token{kind: tokInt, text: l.src[start:l.pos], comments: *pending, pos: start})
	*pending = nil
}

func (l *lexer) lexIdent(start int, pending *[]parserutil.Comment) {
	for l.pos < len(l.src) && (unicode.IsLetter(rune(l.src[l.pos])) || unicode.IsDigit(rune(l.src[l.pos])) || l.src[l.pos] == '_') {
		l.pos++
	}
	l.tokens = append(l.tokens, token{kind: tokIdent, text: l.src[start:l.pos], comments: *pending, pos: start})
	*pending = nil
}

func (l *lexer) skipSpace() {
	for l.pos < len(l.src) && unicode.IsSpace(rune(l.src[l.pos])) {
		l.pos++
	}
}
