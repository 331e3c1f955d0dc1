package token

import "swipc/internal/source"

// TriviaKind classifies non-semantic source text between tokens.
type TriviaKind uint8

const (
	TriviaSpace TriviaKind = iota
	TriviaNewline
	TriviaLineComment
	TriviaBlockComment
	// TriviaDocLine is a `///` documentation line. Doc lines ride along as
	// leading trivia of the next token; the parser carries no payload for
	// them in the model.
	TriviaDocLine
)

// Trivia is a single run of skipped source text.
type Trivia struct {
	Kind TriviaKind
	Span source.Span
	Text string
}

// IsDoc reports whether the trivia is a documentation line.
func (t Trivia) IsDoc() bool { return t.Kind == TriviaDocLine }
