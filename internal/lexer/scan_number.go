package lexer

import (
	"strconv"

	"swipc/internal/diag"
	"swipc/internal/token"
)

// scanNumber scans `[0-9]+` or `0x[0-9a-fA-F]+`. No underscores, no sign,
// no floats. The value must fit in a u64; overflow is a lexical error.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()

	hex := false
	if lx.cursor.Peek() == '0' {
		lx.cursor.Bump()
		if b := lx.cursor.Peek(); b == 'x' || b == 'X' {
			lx.cursor.Bump()
			hex = true
			if !isHex(lx.cursor.Peek()) {
				sp := lx.cursor.SpanFrom(start)
				lx.report(diag.NewError(diag.LexBadNumber, sp, "expected hex digit after '0x'"))
				return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
			}
			for isHex(lx.cursor.Peek()) {
				lx.cursor.Bump()
			}
		}
	}
	if !hex {
		for isDec(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
	}

	sp := lx.cursor.SpanFrom(start)
	text := string(lx.file.Content[sp.Start:sp.End])

	digits := text
	base := 10
	if hex {
		digits = text[2:]
		base = 16
	}
	if _, err := strconv.ParseUint(digits, base, 64); err != nil {
		lx.report(diag.NewError(diag.LexIntOverflow, sp, "numeric literal `"+text+"` does not fit in 64 bits"))
		return token.Token{Kind: token.Invalid, Span: sp, Text: text}
	}

	return token.Token{Kind: token.NumLit, Span: sp, Text: text}
}

// NumLitValue decodes the u64 value of a NumLit token. The lexer already
// rejected overflow, so failure here is an internal bug.
func NumLitValue(t token.Token) (uint64, bool) {
	if t.Kind != token.NumLit {
		return 0, false
	}
	text := t.Text
	base := 10
	if len(text) > 2 && text[0] == '0' && (text[1] == 'x' || text[1] == 'X') {
		text = text[2:]
		base = 16
	}
	v, err := strconv.ParseUint(text, base, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
