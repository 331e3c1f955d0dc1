package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"swipc/internal/source"
	"swipc/internal/token"
)

// FormatTokensPretty prints one token per line with its resolved position.
func FormatTokensPretty(w io.Writer, tokens []token.Token, fs *source.FileSet) error {
	for _, t := range tokens {
		start, _ := fs.Resolve(t.Span)
		if _, err := fmt.Fprintf(w, "%4d:%-3d %-14s %q\n", start.Line, start.Col, t.Kind, t.Text); err != nil {
			return err
		}
	}
	return nil
}

type jsonToken struct {
	Kind  string `json:"kind"`
	Start uint32 `json:"start"`
	End   uint32 `json:"end"`
	Text  string `json:"text"`
}

// FormatTokensJSON prints the token stream as one JSON array.
func FormatTokensJSON(w io.Writer, tokens []token.Token) error {
	out := make([]jsonToken, 0, len(tokens))
	for _, t := range tokens {
		out = append(out, jsonToken{
			Kind:  t.Kind.String(),
			Start: t.Span.Start,
			End:   t.Span.End,
			Text:  t.Text,
		})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
