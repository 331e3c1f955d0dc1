package token

import (
	"swipc/internal/source"
)

// Token represents a single source token with its location and trivia.
type Token struct {
	Kind    Kind
	Span    source.Span
	Text    string
	Leading []Trivia
}

// IsPunct reports whether the token is punctuation.
func (t Token) IsPunct() bool {
	switch t.Kind {
	case LBrace, RBrace, LParen, RParen, Lt, Gt, LBracket, RBracket,
		Comma, Semicolon, Colon, ColonColon, Assign, Plus, Minus, Dot, At:
		return true
	default:
		return false
	}
}

// IsIdent reports whether the token is an identifier with the given text.
// With no arguments it matches any identifier.
func (t Token) IsIdent(text ...string) bool {
	if t.Kind != Ident {
		return false
	}
	if len(text) == 0 {
		return true
	}
	for _, s := range text {
		if t.Text == s {
			return true
		}
	}
	return false
}
