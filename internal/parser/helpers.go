package parser

import (
	"swipc/internal/diag"
	"swipc/internal/lexer"
	"swipc/internal/source"
	"swipc/internal/token"
)

func (p *Parser) peek() token.Token {
	return p.lx.Peek()
}

// advance consumes the next token and remembers its span for diagnostics.
func (p *Parser) advance() token.Token {
	tok := p.lx.Next()
	if tok.Kind != token.EOF && tok.Kind != token.Invalid {
		p.lastSpan = tok.Span
	}
	return tok
}

func (p *Parser) at(k token.Kind) bool {
	return p.peek().Kind == k
}

// atIdent reports whether the next token is an identifier with the given
// text.
func (p *Parser) atIdent(text string) bool {
	tok := p.peek()
	return tok.Kind == token.Ident && tok.Text == text
}

// diagSpan returns the best span for a syntax diagnostic: the offending
// token, or a zero-length span after the last consumed token at EOF.
func (p *Parser) diagSpan() source.Span {
	tok := p.peek()
	if tok.Kind == token.EOF {
		return source.Span{File: p.lastSpan.File, Start: p.lastSpan.End, End: p.lastSpan.End}
	}
	return tok.Span
}

// syntaxErr reports the unexpected token with the expected set and marks
// the parse as failed. No recovery is attempted after this point.
// An Invalid token was already reported by the lexer and only sets the
// fatal flag.
func (p *Parser) syntaxErr(expected string) {
	if p.fatal {
		return
	}
	p.fatal = true

	tok := p.peek()
	if tok.Kind == token.Invalid {
		return
	}

	sp := p.diagSpan()
	var d diag.Diagnostic
	if tok.Kind == token.EOF {
		d = diag.NewError(diag.SynUnexpectedEOF, sp, "unexpected end of input")
	} else {
		d = diag.NewError(diag.SynUnexpectedToken, sp, "unexpected token `"+tok.Text+"`")
	}
	d = d.WithSecondary(sp, "expected "+expected)
	p.bag.Add(d)
}

// expect consumes a token of the given kind or fails with a syntax error.
// expected names the token set for the error message.
func (p *Parser) expect(k token.Kind, expected string) (token.Token, bool) {
	if p.at(k) {
		return p.advance(), true
	}
	p.syntaxErr(expected)
	return token.Token{Kind: token.Invalid, Span: p.diagSpan()}, false
}

// expectIdentText consumes an identifier with the exact text or fails.
func (p *Parser) expectIdentText(text string) (token.Token, bool) {
	if p.atIdent(text) {
		return p.advance(), true
	}
	p.syntaxErr("`" + text + "`")
	return token.Token{Kind: token.Invalid, Span: p.diagSpan()}, false
}

// expectEOF demands that the whole input was consumed.
func (p *Parser) expectEOF() bool {
	if p.fatal {
		return false
	}
	if p.at(token.EOF) {
		return true
	}
	p.syntaxErr("end of input")
	return false
}

// parseLocalIdent consumes one unqualified, non-reserved identifier.
func (p *Parser) parseLocalIdent(what string) (token.Token, bool) {
	tok := p.peek()
	if tok.Kind != token.Ident || token.IsReserved(tok.Text) {
		p.syntaxErr(what)
		return token.Token{Kind: token.Invalid, Span: p.diagSpan()}, false
	}
	return p.advance(), true
}

// parseNamespacedIdent consumes `a::b::c` and the covering span.
func (p *Parser) parseNamespacedIdent(what string) (segments []string, span source.Span, ok bool) {
	first, ok := p.parseLocalIdent(what)
	if !ok {
		return nil, source.Span{}, false
	}
	segments = append(segments, first.Text)
	span = first.Span
	for p.at(token.ColonColon) {
		p.advance()
		seg, ok := p.parseLocalIdent("an identifier after `::`")
		if !ok {
			return nil, source.Span{}, false
		}
		segments = append(segments, seg.Text)
		span = span.Cover(seg.Span)
	}
	return segments, span, true
}

// addStructural surfaces constructor diagnostics, enriched with a
// secondary label on the enclosing item.
func (p *Parser) addStructural(diags []diag.Diagnostic, itemSpan source.Span, itemMsg string) {
	for _, d := range diags {
		p.bag.Add(d.WithSecondary(itemSpan, itemMsg))
	}
}

// flushStructural surfaces diagnostics collected mid-reduction (for example
// from a bad sf::Bytes argument) and reports whether there were any.
func (p *Parser) flushStructural(itemSpan source.Span, itemMsg string) bool {
	if len(p.pendingStructural) == 0 {
		return false
	}
	p.addStructural(p.pendingStructural, itemSpan, itemMsg)
	p.pendingStructural = nil
	return true
}

// numLitValue decodes a NumLit token; a failure here means the lexer let a
// bad literal through, which is an internal bug.
func (p *Parser) numLitValue(tok token.Token) uint64 {
	v, ok := lexer.NumLitValue(tok)
	if !ok {
		p.bag.Add(diag.NewBug(diag.BugInternal, tok.Span, "numeric literal survived lexing but does not decode"))
	}
	return v
}
