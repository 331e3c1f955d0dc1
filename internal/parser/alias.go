package parser

import (
	"swipc/internal/ast"
	"swipc/internal/token"
)

// parseTypeAlias parses `type ns::Name = NominalType ;`.
func (p *Parser) parseTypeAlias() (*ast.TypeAlias, bool) {
	kw, ok := p.expectIdentText("type")
	if !ok {
		return nil, false
	}

	segments, _, ok := p.parseNamespacedIdent("a type name")
	if !ok {
		return nil, false
	}

	if _, ok := p.expect(token.Assign, "'='"); !ok {
		return nil, false
	}

	referenced, _, ok := p.parseNominalType()
	if !ok {
		return nil, false
	}

	semi, ok := p.expect(token.Semicolon, "';'")
	if !ok {
		return nil, false
	}

	span := kw.Span.Cover(semi.Span)
	name := ast.NewNamespacedIdent(segments...)
	if p.flushStructural(span, "in type alias `"+name.String()+"`") {
		return nil, true
	}
	return &ast.TypeAlias{Name: name, Referenced: referenced, Span: span}, true
}
