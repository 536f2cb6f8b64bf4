package refparser

import (
	"fmt"

	"github.com/xapi-project/xapi/internal/apierr"
	"github.com/xapi-project/xapi/internal/builder"
	"github.com/xapi-project/xapi/internal/config"
	"github.com/xapi-project/xapi/internal/input"
	"github.com/xapi-project/xapi/internal/model"
	"github.com/xapi-project/xapi/internal/parserutil"
)

// Parser implements the Builder append contract (spec §4.3, §6.2) for the
// toy syntax documented in lexer.go.
type Parser struct{}

// Parse reads every chunk from in, parses it, and appends the resulting
// partial namespace to b. It accumulates ParseErrors across chunks rather
// than stopping at the first one, the same accumulate-don't-fail-fast
// contract the Builder itself follows.
func (Parser) Parse(cfg *config.ParserConfig, in input.Input, b *builder.Builder) []error {
	if cfg == nil {
		cfg = &config.ParserConfig{}
	}
	var errs []error
	for {
		meta, text, ok := in.NextChunk()
		if !ok {
			break
		}
		root, chunkErrs := parseChunk(cfg, text, meta.RelativeFilePath)
		errs = append(errs, chunkErrs...)
		if root != nil {
			b.Append(meta, root)
		}
	}
	return errs
}

func parseChunk(cfg *config.ParserConfig, text, relPath string) (*model.Namespace, []error) {
	tokens, err := lex(text)
	if err != nil {
		return nil, []error{&apierr.ParseError{Span: apierr.Span{RelativeFilePath: relPath}, Message: err.Error()}}
	}
	p := &parser{tokens: tokens, cfg: cfg, relPath: relPath}
	root := &model.Namespace{}
	p.parseItems(root, tokEOF)
	return root, p.errs
}

type parser struct {
	tokens  []token
	pos     int
	cfg     *config.ParserConfig
	relPath string
	errs    []error
}

func (p *parser) peek() token {
	if p.pos >= len(p.tokens) {
		return token{kind: tokEOF}
	}
	return p.tokens[p.pos]
}

func (p *parser) next() token {
	t := p.peek()
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	return t
}

func (p *parser) span(t token) apierr.Span {
	return apierr.Span{RelativeFilePath: p.relPath, Start: t.pos, End: t.pos}
}

func (p *parser) expect(kind tokenKind) error {
	if p.peek().kind != kind {
		t := p.peek()
		return &apierr.ParseError{Span: p.span(t), Message: fmt.Sprintf("unexpected token %q", t.text)}
	}
	p.next()
	return nil
}

func (p *parser) expectIdent() (string, error) {
	t := p.peek()
	if t.kind != tokIdent {
		return "", &apierr.ParseError{Span: p.span(t), Message: fmt.Sprintf("expected identifier, found %q", t.text)}
	}
	p.next()
	return t.text, nil
}

// parseVisibility consumes an optional leading "pub" keyword.
func (p *parser) parseVisibility() parserutil.Visibility {
	if p.peek().kind == tokIdent && p.peek().text == "pub" {
		p.next()
		return parserutil.VisibilityPublic
	}
	return parserutil.VisibilityPrivate
}

func toAttributes(comments []parserutil.Comment) model.Attributes {
	var out []model.Comment
	for _, c := range comments {
		out = append(out, model.Comment{Text: c.Text, IsDoc: c.IsDoc})
	}
	return model.Attributes{Comments: out}
}

// parseItems parses declarations until it sees stop (tokRBrace for a
// nested block, tokEOF for the top level of a chunk), grafting each one
// onto ns.
func (p *parser) parseItems(ns *model.Namespace, stop tokenKind) {
	for {
		tok := p.peek()
		if tok.kind == stop || tok.kind == tokEOF {
			return
		}
		vis := p.parseVisibility()
		kw := p.peek()
		// Comments preceding the item attach to its first token, which is
		// "pub" when a visibility keyword is present.
		comments := tok.comments
		if vis == parserutil.VisibilityPublic {
			comments = append(append([]parserutil.Comment{}, tok.comments...), kw.comments...)
		}
		if kw.kind != tokIdent {
			p.errs = append(p.errs, &apierr.ParseError{Span: p.span(kw), Message: fmt.Sprintf("expected item, found %q", kw.text)})
			p.next()
			continue
		}
		switch kw.text {
		case "mod":
			p.parseMod(ns, vis, comments)
		case "struct":
			p.parseStruct(ns, vis, comments)
		case "fn":
			p.parseFn(ns, vis, comments)
		case "enum":
			p.parseEnum(ns, vis, comments)
		case "type":
			p.parseTypeAlias(ns, vis, comments)
		default:
			p.errs = append(p.errs, &apierr.ParseError{Span: p.span(kw), Message: fmt.Sprintf("unknown item keyword %q", kw.text)})
			p.next()
		}
	}
}

func (p *parser) parseMod(ns *model.Namespace, vis parserutil.Visibility, comments []parserutil.Comment) {
	p.next() // "mod"
	name, err := p.expectIdent()
	if err != nil {
		p.errs = append(p.errs, err)
		return
	}
	if err := p.expect(tokLBrace); err != nil {
		p.errs = append(p.errs, err)
		return
	}
	child := &model.Namespace{Name: name, Attributes: toAttributes(comments)}
	p.parseItems(child, tokRBrace)
	p.next() // "}"
	if !vis.Keep(p.cfg.EnableParsePrivate) {
		return
	}
	ns.Namespaces = append(ns.Namespaces, child)
}

func (p *parser) parseStruct(ns *model.Namespace, vis parserutil.Visibility, comments []parserutil.Comment) {
	p.next() // "struct"
	name, err := p.expectIdent()
	if err != nil {
		p.errs = append(p.errs, err)
		return
	}
	if err := p.expect(tokLBrace); err != nil {
		p.errs = append(p.errs, err)
		return
	}
	dto := &model.Dto{Name: name, Attributes: toAttributes(comments)}
	for p.peek().kind != tokRBrace && p.peek().kind != tokEOF {
		field, _, err := p.parseField()
		if err != nil {
			p.errs = append(p.errs, err)
			p.skipToRBraceOrComma()
			continue
		}
		dto.Fields = append(dto.Fields, field)
		if p.peek().kind == tokComma {
			p.next()
		}
	}
	p.next() // "}"

	// An optional second "{ item* }" block holds the Dto's own nested
	// namespace of sub-entities (spec §3.1), the way a source language
	// attaches methods or nested types to a record.
	if p.peek().kind == tokLBrace {
		p.next()
		dto.Nested = &model.Namespace{}
		p.parseItems(dto.Nested, tokRBrace)
		p.next() // "}"
	}

	if !vis.Keep(p.cfg.EnableParsePrivate) {
		return
	}
	ns.Dtos = append(ns.Dtos, dto)
}

func (p *parser) parseField() (*model.Field, parserutil.Visibility, error) {
	comments := p.peek().comments
	vis := p.parseVisibility()
	name, err := p.expectIdent()
	if err != nil {
		return nil, vis, err
	}
	if err := p.expect(tokColon); err != nil {
		return nil, vis, err
	}
	ty, err := p.parseType()
	if err != nil {
		return nil, vis, err
	}
	return &model.Field{Name: name, Type: ty, Attributes: toAttributes(comments)}, vis, nil
}

func (p *parser) parseFn(ns *model.Namespace, vis parserutil.Visibility, comments []parserutil.Comment) {
	p.next() // "fn"
	name, err := p.expectIdent()
	if err != nil {
		p.errs = append(p.errs, err)
		return
	}
	if err := p.expect(tokLParen); err != nil {
		p.errs = append(p.errs, err)
		return
	}
	rpc := &model.Rpc{Name: name, Attributes: toAttributes(comments)}
	for p.peek().kind != tokRParen && p.peek().kind != tokEOF {
		field, _, err := p.parseField()
		if err != nil {
			p.errs = append(p.errs, err)
			break
		}
		rpc.Params = append(rpc.Params, field)
		if p.peek().kind == tokComma {
			p.next()
		}
	}
	if err := p.expect(tokRParen); err != nil {
		p.errs = append(p.errs, err)
		return
	}
	if p.peek().kind == tokArrow {
		p.next()
		ty, err := p.parseType()
		if err != nil {
			p.errs = append(p.errs, err)
			return
		}
		rpc.ReturnType = &ty
	}
	p.skipBody()
	if !vis.Keep(p.cfg.EnableParsePrivate) {
		return
	}
	ns.Rpcs = append(ns.Rpcs, rpc)
}

// skipBody consumes a balanced "{ ... }" block without interpreting its
// contents: function bodies are not part of the API surface (spec §6.2).
func (p *parser) skipBody() {
	if p.peek().kind != tokLBrace {
		return
	}
	depth := 0
	for {
		t := p.peek()
		if t.kind == tokEOF {
			return
		}
		if t.kind == tokLBrace {
			depth++
		}
		if t.kind == tokRBrace {
			depth--
			p.next()
			if depth == 0 {
				return
			}
			continue
		}
		p.next()
	}
}

func (p *parser) parseEnum(ns *model.Namespace, vis parserutil.Visibility, comments []parserutil.Comment) {
	p.next() // "enum"
	name, err := p.expectIdent()
	if err != nil {
		p.errs = append(p.errs, err)
		return
	}
	if err := p.expect(tokLBrace); err != nil {
		p.errs = append(p.errs, err)
		return
	}
	e := &model.Enum{Name: name, Attributes: toAttributes(comments)}
	var next int64
	for p.peek().kind != tokRBrace && p.peek().kind != tokEOF {
		valComments := p.peek().comments
		valName, err := p.expectIdent()
		if err != nil {
			p.errs = append(p.errs, err)
			p.skipToRBraceOrComma()
			continue
		}
		number := next
		if p.peek().kind == tokEquals {
			p.next()
			t := p.peek()
			if t.kind != tokInt {
				p.errs = append(p.errs, &apierr.ParseError{Span: p.span(t), Message: "expected integer enum value"})
			} else {
				p.next()
				var parsed int64
				_, scanErr := fmt.Sscanf(t.text, "%d", &parsed)
				if scanErr == nil {
					number = parsed
				}
			}
		}
		next = number + 1
		e.Values = append(e.Values, &model.EnumValue{Name: valName, Number: number, Attributes: toAttributes(valComments)})
		if p.peek().kind == tokComma {
			p.next()
		}
	}
	p.next() // "}"
	if !vis.Keep(p.cfg.EnableParsePrivate) {
		return
	}
	ns.Enums = append(ns.Enums, e)
}

func (p *parser) parseTypeAlias(ns *model.Namespace, vis parserutil.Visibility, comments []parserutil.Comment) {
	p.next() // "type"
	name, err := p.expectIdent()
	if err != nil {
		p.errs = append(p.errs, err)
		return
	}
	if err := p.expect(tokEquals); err != nil {
		p.errs = append(p.errs, err)
		return
	}
	ty, err := p.parseType()
	if err != nil {
		p.errs = append(p.errs, err)
		return
	}
	if err := p.expect(tokSemi); err != nil {
		p.errs = append(p.errs, err)
		return
	}
	if !vis.Keep(p.cfg.EnableParsePrivate) {
		return
	}
	ns.TypeAliases = append(ns.TypeAliases, &model.TypeAlias{Name: name, TargetType: ty, Attributes: toAttributes(comments)})
}

func (p *parser) skipToRBraceOrComma() {
	for {
		k := p.peek().kind
		if k == tokRBrace || k == tokComma || k == tokEOF {
			return
		}
		p.next()
	}
}
