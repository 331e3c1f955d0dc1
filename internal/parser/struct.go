package parser

import (
	"swipc/internal/ast"
	"swipc/internal/diag"
	"swipc/internal/token"
)

// parseStructDef parses
//
//	struct ns::Name : sf::Marker, sf::Marker { field* }
//
// where each field is `NominalType name ;`.
func (p *Parser) parseStructDef() (*ast.Struct, bool) {
	kw, ok := p.expectIdentText("struct")
	if !ok {
		return nil, false
	}

	segments, _, ok := p.parseNamespacedIdent("a struct name")
	if !ok {
		return nil, false
	}
	name := ast.NewNamespacedIdent(segments...)

	var markers []ast.StructMarker
	if p.at(token.Colon) {
		p.advance()
		for {
			markerSegs, markerSpan, ok := p.parseNamespacedIdent("a struct marker")
			if !ok {
				return nil, false
			}
			marker, known := ast.MarkerByName(ast.NewNamespacedIdent(markerSegs...), markerSpan)
			if !known {
				p.pendingStructural = append(p.pendingStructural,
					diag.NewError(diag.MdlUnknownMarker, markerSpan,
						"unknown struct marker `"+ast.NewNamespacedIdent(markerSegs...).String()+"`"))
			} else {
				markers = append(markers, marker)
			}
			if !p.at(token.Comma) {
				break
			}
			p.advance()
		}
	}

	if _, ok := p.expect(token.LBrace, "'{'"); !ok {
		return nil, false
	}

	var fields []ast.StructField
	for !p.at(token.RBrace) && !p.fatal {
		field, ok := p.parseStructField()
		if !ok {
			return nil, false
		}
		fields = append(fields, field)
	}

	rbrace, ok := p.expect(token.RBrace, "'}'")
	if !ok {
		return nil, false
	}

	span := kw.Span.Cover(rbrace.Span)
	itemMsg := "in struct `" + name.String() + "`"
	bad := p.flushStructural(span, itemMsg)

	s, diags := ast.NewStruct(name, fields, markers, span)
	if diags != nil {
		p.addStructural(diags, span, itemMsg)
		return nil, true
	}
	if bad {
		return nil, true
	}
	return s, true
}

// parseStructField parses `NominalType name ;`.
func (p *Parser) parseStructField() (ast.StructField, bool) {
	ty, tySpan, ok := p.parseNominalType()
	if !ok {
		return ast.StructField{}, false
	}
	nameTok, ok := p.parseLocalIdent("a field name")
	if !ok {
		return ast.StructField{}, false
	}
	semi, ok := p.expect(token.Semicolon, "';'")
	if !ok {
		return ast.StructField{}, false
	}
	return ast.StructField{
		Name: nameTok.Text,
		Type: ty,
		Span: tySpan.Cover(semi.Span),
	}, true
}
