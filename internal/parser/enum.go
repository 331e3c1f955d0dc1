package parser

import (
	"swipc/internal/ast"
	"swipc/internal/source"
	"swipc/internal/token"
)

// parseEnumDef parses
//
//	enum ns::Name : u8 { A = 0, B = 1, }
//
// The trailing comma is optional.
func (p *Parser) parseEnumDef() (*ast.Enum, bool) {
	kw, ok := p.expectIdentText("enum")
	if !ok {
		return nil, false
	}

	name, base, arms, endSpan, ok := p.parseArmedBody("an enum name")
	if !ok {
		return nil, false
	}

	span := kw.Span.Cover(endSpan)
	itemMsg := "in enum `" + name.String() + "`"
	if p.flushStructural(span, itemMsg) {
		return nil, true
	}

	e, diags := ast.NewEnum(name, base, arms, span)
	if diags != nil {
		p.addStructural(diags, span, itemMsg)
		return nil, true
	}
	return e, true
}

// parseBitflagsDef parses `bitflags ns::Name : u32 { ... }` with the same
// body shape as an enum.
func (p *Parser) parseBitflagsDef() (*ast.Bitflags, bool) {
	kw, ok := p.expectIdentText("bitflags")
	if !ok {
		return nil, false
	}

	name, base, arms, endSpan, ok := p.parseArmedBody("a bitflags name")
	if !ok {
		return nil, false
	}

	span := kw.Span.Cover(endSpan)
	itemMsg := "in bitflags `" + name.String() + "`"
	if p.flushStructural(span, itemMsg) {
		return nil, true
	}

	b, diags := ast.NewBitflags(name, base, arms, span)
	if diags != nil {
		p.addStructural(diags, span, itemMsg)
		return nil, true
	}
	return b, true
}

// parseArmedBody parses the shared `Name : IntType { Arm ("," Arm)* ","? }`
// shape of enums and bitflags, returning the closing brace span.
func (p *Parser) parseArmedBody(nameWhat string) (ast.NamespacedIdent, ast.IntType, []ast.EnumArm, source.Span, bool) {
	fail := func() (ast.NamespacedIdent, ast.IntType, []ast.EnumArm, source.Span, bool) {
		return ast.NamespacedIdent{}, 0, nil, source.Span{}, false
	}

	segments, _, ok := p.parseNamespacedIdent(nameWhat)
	if !ok {
		return fail()
	}
	name := ast.NewNamespacedIdent(segments...)

	if _, ok := p.expect(token.Colon, "':'"); !ok {
		return fail()
	}
	base, ok := p.parseIntType()
	if !ok {
		return fail()
	}
	if _, ok := p.expect(token.LBrace, "'{'"); !ok {
		return fail()
	}

	// at least one arm is required; a trailing comma is fine
	arm, ok := p.parseArm()
	if !ok {
		return fail()
	}
	arms := []ast.EnumArm{arm}
	for p.at(token.Comma) && !p.fatal {
		p.advance()
		if p.at(token.RBrace) {
			break
		}
		arm, ok := p.parseArm()
		if !ok {
			return fail()
		}
		arms = append(arms, arm)
	}

	rbrace, ok := p.expect(token.RBrace, "'}' or ','")
	if !ok {
		return fail()
	}
	return name, base, arms, rbrace.Span, true
}

// parseArm parses `Name = NumLit`.
func (p *Parser) parseArm() (ast.EnumArm, bool) {
	nameTok, ok := p.parseLocalIdent("an arm name")
	if !ok {
		return ast.EnumArm{}, false
	}
	if _, ok := p.expect(token.Assign, "'='"); !ok {
		return ast.EnumArm{}, false
	}
	valueTok, ok := p.expect(token.NumLit, "an arm value")
	if !ok {
		return ast.EnumArm{}, false
	}
	return ast.EnumArm{
		Name:  nameTok.Text,
		Value: p.numLitValue(valueTok),
		Span:  nameTok.Span.Cover(valueTok.Span),
	}, true
}
