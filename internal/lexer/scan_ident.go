package lexer

import (
	"swipc/internal/token"
)

// scanIdent scans [A-Za-z_][A-Za-z0-9_]*. Token.Text is exactly the source
// slice. Identifiers are ASCII-only.
func (lx *Lexer) scanIdent() token.Token {
	start := lx.cursor.Mark()

	lx.cursor.Bump()
	for isIdentContinue(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}

	sp := lx.cursor.SpanFrom(start)
	return token.Token{
		Kind: token.Ident,
		Span: sp,
		Text: string(lx.file.Content[sp.Start:sp.End]),
	}
}
