package parser

import (
	"swipc/internal/ast"
	"swipc/internal/source"
	"swipc/internal/token"
)

// builtinNominal matches the single-word builtin type spellings.
func builtinNominal(text string) (ast.Nominal, bool) {
	if it, ok := ast.IntTypeByName(text); ok {
		return ast.Int(it), true
	}
	switch text {
	case "b8", "bool":
		return ast.Bool(), true
	case "f32":
		return ast.F32(), true
	}
	return ast.Nominal{}, false
}

// parseNominalType parses a type expression in field, alias, or argument
// position: a builtin scalar, sf::Bytes<...>, sf::Unknown[<...>], or a
// reference to a named type.
func (p *Parser) parseNominalType() (ast.Nominal, source.Span, bool) {
	tok := p.peek()
	if tok.Kind != token.Ident {
		p.syntaxErr("a type")
		return ast.Nominal{}, source.Span{}, false
	}

	if n, ok := builtinNominal(tok.Text); ok {
		p.advance()
		return n, tok.Span, true
	}

	segments, span, ok := p.parseNamespacedIdent("a type")
	if !ok {
		return ast.Nominal{}, source.Span{}, false
	}
	return p.parseNominalSuffix(segments, span)
}

// parseNominalSuffix finishes a type expression whose qualified name was
// already consumed, handling the sf::Bytes and sf::Unknown generic forms.
func (p *Parser) parseNominalSuffix(segments []string, span source.Span) (ast.Nominal, source.Span, bool) {
	if len(segments) == 2 && segments[0] == "sf" {
		switch segments[1] {
		case "Bytes":
			return p.parseBytesArgs(span)
		case "Unknown":
			return p.parseUnknownArgs(span)
		}
	}
	name := ast.NewNamespacedIdent(segments...)
	return ast.TypeName(name, span), span, true
}

// parseBytesArgs parses `<size>` or `<size, alignment>` after sf::Bytes.
func (p *Parser) parseBytesArgs(start source.Span) (ast.Nominal, source.Span, bool) {
	if _, ok := p.expect(token.Lt, "'<' with a byte size"); !ok {
		return ast.Nominal{}, source.Span{}, false
	}
	sizeTok, ok := p.expect(token.NumLit, "a byte size")
	if !ok {
		return ast.Nominal{}, source.Span{}, false
	}
	size := p.numLitValue(sizeTok)

	var alignment uint64
	if p.at(token.Comma) {
		p.advance()
		alignTok, ok := p.expect(token.NumLit, "an alignment")
		if !ok {
			return ast.Nominal{}, source.Span{}, false
		}
		alignment = p.numLitValue(alignTok)
	}

	gt, ok := p.expect(token.Gt, "'>'")
	if !ok {
		return ast.Nominal{}, source.Span{}, false
	}

	span := start.Cover(gt.Span)
	n, diags := ast.NewBytes(size, alignment, span)
	if diags != nil {
		// structural, not syntactic: remember and keep parsing
		p.pendingStructural = append(p.pendingStructural, diags...)
		return ast.Nominal{}, span, true
	}
	return n, span, true
}

// parseUnknownArgs parses the optional `<size>` after sf::Unknown.
func (p *Parser) parseUnknownArgs(start source.Span) (ast.Nominal, source.Span, bool) {
	if !p.at(token.Lt) {
		return ast.Unknown(nil), start, true
	}
	p.advance()
	sizeTok, ok := p.expect(token.NumLit, "a size")
	if !ok {
		return ast.Nominal{}, source.Span{}, false
	}
	size := p.numLitValue(sizeTok)
	gt, ok := p.expect(token.Gt, "'>'")
	if !ok {
		return ast.Nominal{}, source.Span{}, false
	}
	return ast.Unknown(&size), start.Cover(gt.Span), true
}

// parseIntType parses the base type of an enum or bitflags declaration.
func (p *Parser) parseIntType() (ast.IntType, bool) {
	tok := p.peek()
	if tok.Kind == token.Ident {
		if it, ok := ast.IntTypeByName(tok.Text); ok {
			p.advance()
			return it, true
		}
	}
	p.syntaxErr("an integer type (u8..u64, i8..i64, s8..s64)")
	return 0, false
}
