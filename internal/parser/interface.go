package parser

import (
	"swipc/internal/ast"
	"swipc/internal/lexer"
	"swipc/internal/token"
)

// parseInterfaceDef parses
//
//	interface ns::IName is "svc:a", "svc:b" { [1] Cmd(args); ... }
//
// The `is` clause is optional.
func (p *Parser) parseInterfaceDef() (*ast.Interface, bool) {
	kw, ok := p.expectIdentText("interface")
	if !ok {
		return nil, false
	}

	segments, _, ok := p.parseNamespacedIdent("an interface name")
	if !ok {
		return nil, false
	}
	name := ast.NewNamespacedIdent(segments...)

	var smNames []ast.SMName
	if p.atIdent("is") {
		p.advance()
		for {
			smTok, ok := p.expect(token.ServiceName, "a quoted service name")
			if !ok {
				return nil, false
			}
			smNames = append(smNames, ast.SMName{
				Name: lexer.ServiceNameValue(smTok),
				Span: smTok.Span,
			})
			if !p.at(token.Comma) {
				break
			}
			p.advance()
		}
	}

	if _, ok := p.expect(token.LBrace, "'{'"); !ok {
		return nil, false
	}

	var commands []ast.Command
	for !p.at(token.RBrace) && !p.fatal {
		cmd, ok := p.parseCommand()
		if !ok {
			return nil, false
		}
		if cmd != nil {
			commands = append(commands, *cmd)
		}
	}

	rbrace, ok := p.expect(token.RBrace, "'}' or a command")
	if !ok {
		return nil, false
	}

	span := kw.Span.Cover(rbrace.Span)
	itemMsg := "in interface `" + name.String() + "`"
	bad := p.flushStructural(span, itemMsg)

	iface, diags := ast.NewInterface(name, smNames, commands, span)
	if diags != nil {
		p.addStructural(diags, span, itemMsg)
		return nil, true
	}
	if bad {
		return nil, true
	}
	return iface, true
}

// parseCommand parses one command declaration:
//
//	@version(2.0.0+) [8] OpenSession(sf::Out<u32> out, sf::CopyHandle h);
//
// Decorators are accepted and discarded. A nil command with ok=true means
// the command failed structural validation and was reported.
func (p *Parser) parseCommand() (*ast.Command, bool) {
	start := p.peek().Span

	for p.at(token.At) && !p.fatal {
		if !p.parseDecorator() {
			return nil, false
		}
	}

	if _, ok := p.expect(token.LBracket, "'[' with a command id"); !ok {
		return nil, false
	}
	idTok, ok := p.expect(token.NumLit, "a command id")
	if !ok {
		return nil, false
	}
	if _, ok := p.expect(token.RBracket, "']'"); !ok {
		return nil, false
	}

	nameTok, ok := p.parseLocalIdent("a command name")
	if !ok {
		return nil, false
	}

	if _, ok := p.expect(token.LParen, "'('"); !ok {
		return nil, false
	}

	var args []ast.Argument
	if !p.at(token.RParen) {
		for {
			arg, ok := p.parseArgument()
			if !ok {
				return nil, false
			}
			args = append(args, arg)
			if !p.at(token.Comma) {
				break
			}
			p.advance()
		}
	}

	if _, ok := p.expect(token.RParen, "')' or ','"); !ok {
		return nil, false
	}
	semi, ok := p.expect(token.Semicolon, "';'")
	if !ok {
		return nil, false
	}

	span := start.Cover(semi.Span)
	cmd, diags := ast.NewCommand(p.numLitValue(idTok), idTok.Span, nameTok.Text, args, span)
	if diags != nil {
		p.addStructural(diags, span, "in command `"+nameTok.Text+"`")
		return nil, true
	}
	return cmd, true
}

// parseDecorator parses `@version(...)` or `@undocumented`. Both are
// surface-only; nothing flows into the model.
func (p *Parser) parseDecorator() bool {
	p.advance() // '@'
	tok := p.peek()
	if tok.Kind != token.Ident {
		p.syntaxErr("`version` or `undocumented`")
		return false
	}
	switch tok.Text {
	case "undocumented":
		p.advance()
		return true
	case "version":
		p.advance()
		if _, ok := p.expect(token.LParen, "'('"); !ok {
			return false
		}
		if !p.parseVersion() {
			return false
		}
		if p.at(token.Plus) {
			p.advance()
		} else if p.at(token.Minus) {
			p.advance()
			if !p.parseVersion() {
				return false
			}
		}
		if _, ok := p.expect(token.RParen, "')'"); !ok {
			return false
		}
		return true
	default:
		p.syntaxErr("`version` or `undocumented`")
		return false
	}
}

// parseVersion parses `major.minor.patch`.
func (p *Parser) parseVersion() bool {
	if _, ok := p.expect(token.NumLit, "a version number"); !ok {
		return false
	}
	if _, ok := p.expect(token.Dot, "'.'"); !ok {
		return false
	}
	if _, ok := p.expect(token.NumLit, "a version number"); !ok {
		return false
	}
	if _, ok := p.expect(token.Dot, "'.'"); !ok {
		return false
	}
	if _, ok := p.expect(token.NumLit, "a version number"); !ok {
		return false
	}
	return true
}

// parseArgument parses `Value name?`.
func (p *Parser) parseArgument() (ast.Argument, bool) {
	start := p.peek().Span
	value, ok := p.parseValue()
	if !ok {
		return ast.Argument{}, false
	}
	arg := ast.Argument{Value: value, Span: start.Cover(p.lastSpan)}
	if tok := p.peek(); tok.Kind == token.Ident && !token.IsReserved(tok.Text) {
		p.advance()
		arg.Name = tok.Text
		arg.Span = arg.Span.Cover(tok.Span)
	}
	return arg, true
}
