package refparser

import (
	"fmt"

	"github.com/xapi-project/xapi/internal/apierr"
	"github.com/xapi-project/xapi/internal/model"
)

// parseType parses a type expression per the grammar documented in
// lexer.go, consulting cfg for Type_User overrides.
func (p *parser) parseType() (model.Type, error) {
	t, err := p.parseTypeAtom()
	if err != nil {
		return model.Type{}, err
	}
	for p.peek().kind == tokQuestion {
		p.next()
		t = model.OptionalType(t)
	}
	return t, nil
}

func (p *parser) parseTypeAtom() (model.Type, error) {
	tok := p.peek()
	switch tok.kind {
	case tokLBracket:
		p.next()
		elem, err := p.parseType()
		if err != nil {
			return model.Type{}, err
		}
		if err := p.expect(tokRBracket); err != nil {
			return model.Type{}, err
		}
		return model.ArrayType(elem), nil

	case tokAmp:
		p.next()
		semantics := model.SemanticsRef
		if p.peek().kind == tokIdent && p.peek().text == "mut" {
			p.next()
			semantics = model.SemanticsMut
		}
		path, err := p.parsePath()
		if err != nil {
			return model.Type{}, err
		}
		return model.ApiType(model.NewEntityID(path...), semantics), nil

	case tokIdent:
		if tok.text == "map" {
			return p.parseMapType()
		}
		if primitiveKeywords[tok.text] {
			p.next()
			return model.Primitive(primitiveKind(tok.text)), nil
		}
		if name, ok := p.cfg.UserTypeName(tok.text); ok {
			p.next()
			return model.UserType(name), nil
		}
		path, err := p.parsePath()
		if err != nil {
			return model.Type{}, err
		}
		return model.ApiType(model.NewEntityID(path...), model.SemanticsValue), nil
	}
	return model.Type{}, &apierr.ParseError{Span: p.span(tok), Message: fmt.Sprintf("expected type, found %q", tok.text)}
}

func (p *parser) parseMapType() (model.Type, error) {
	p.next() // "map"
	if err := p.expect(tokLAngle); err != nil {
		return model.Type{}, err
	}
	key, err := p.parseType()
	if err != nil {
		return model.Type{}, err
	}
	if err := p.expect(tokComma); err != nil {
		return model.Type{}, err
	}
	value, err := p.parseType()
	if err != nil {
		return model.Type{}, err
	}
	if err := p.expect(tokRAngle); err != nil {
		return model.Type{}, err
	}
	return model.MapType(key, value), nil
}

func (p *parser) parsePath() ([]string, error) {
	var parts []string
	name, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	parts = append(parts, name)
	for p.peek().kind == tokDot {
		p.next()
		name, err := p.expectIdent()
		if err != nil {
			return nil, err
		}
		parts = append(parts, name)
	}
	return parts, nil
}

func primitiveKind(name string) model.TypeKind {
	switch name {
	case "bool":
		return model.TypeBool
	case "u8":
		return model.TypeU8
	case "u16":
		return model.TypeU16
	case "u32":
		return model.TypeU32
	case "u64":
		return model.TypeU64
	case "u128":
		return model.TypeU128
	case "usize":
		return model.TypeUSize
	case "i8":
		return model.TypeI8
	case "i16":
		return model.TypeI16
	case "i32":
		return model.TypeI32
	case "i64":
		return model.TypeI64
	case "i128":
		return model.TypeI128
	case "f8":
		return model.TypeF8
	case "f16":
		return model.TypeF16
	case "f32":
		return model.TypeF32
	case "f64":
		return model.TypeF64
	case "f128":
		return model.TypeF128
	case "string":
		return model.TypeString
	case "bytes":
		return model.TypeBytes
	}
	return model.TypeString
}
