package lexer

import (
	"swipc/internal/diag"
	"swipc/internal/token"
)

// scanServiceName scans a quoted service name literal. The inner charset is
// restricted to [A-Za-z0-9_:-]; anything else is a lexical error. There are
// no escapes, and the literal may not span lines.
func (lx *Lexer) scanServiceName() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening '"'

	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b == '"' {
			lx.cursor.Bump()
			sp := lx.cursor.SpanFrom(start)
			text := string(lx.file.Content[sp.Start:sp.End])
			return token.Token{Kind: token.ServiceName, Span: sp, Text: text}
		}
		if b == '\n' || b == '\r' {
			sp := lx.cursor.SpanFrom(start)
			lx.report(diag.NewError(diag.LexUnterminatedString, sp, "newline in service name literal"))
			return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
		}
		if !isServiceNameByte(b) {
			charStart := lx.cursor.Mark()
			lx.cursor.Bump()
			sp := lx.cursor.SpanFrom(charStart)
			lx.report(diag.NewError(diag.LexBadServiceName, sp, "character not allowed in a service name"))
			// finish scanning the literal so follow-up tokens stay aligned
			for !lx.cursor.EOF() && lx.cursor.Peek() != '"' && lx.cursor.Peek() != '\n' {
				lx.cursor.Bump()
			}
			lx.cursor.Eat('"')
			full := lx.cursor.SpanFrom(start)
			return token.Token{Kind: token.Invalid, Span: full, Text: string(lx.file.Content[full.Start:full.End])}
		}
		lx.cursor.Bump()
	}

	sp := lx.cursor.SpanFrom(start)
	lx.report(diag.NewError(diag.LexUnterminatedString, sp, "unterminated service name literal"))
	return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}

// ServiceNameValue strips the quotes from a ServiceName token.
func ServiceNameValue(t token.Token) string {
	if t.Kind != token.ServiceName || len(t.Text) < 2 {
		return ""
	}
	return t.Text[1 : len(t.Text)-1]
}
