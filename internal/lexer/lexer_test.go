package lexer

import (
	"testing"

	"swipc/internal/diag"
	"swipc/internal/source"
	"swipc/internal/token"
)

func lexAll(t *testing.T, src string) ([]token.Token, *diag.Bag) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.id", []byte(src))
	bag := diag.NewBag(0)
	lx := New(fs.Get(id), Options{Reporter: diag.BagReporter{Bag: bag}})

	var tokens []token.Token
	for {
		tok := lx.Next()
		if tok.Kind == token.EOF {
			break
		}
		tokens = append(tokens, tok)
	}
	return tokens, bag
}

func kinds(tokens []token.Token) []token.Kind {
	out := make([]token.Kind, len(tokens))
	for i, t := range tokens {
		out[i] = t.Kind
	}
	return out
}

func TestBasicTokens(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []token.Kind
	}{
		{"ident", "hello", []token.Kind{token.Ident}},
		{"underscore_ident", "_foo_1", []token.Kind{token.Ident}},
		{"decimal", "42", []token.Kind{token.NumLit}},
		{"hex", "0x1F", []token.Kind{token.NumLit}},
		{"zero", "0", []token.Kind{token.NumLit}},
		{"service_name", `"fsp-srv"`, []token.Kind{token.ServiceName}},
		{"empty_service_name", `""`, []token.Kind{token.ServiceName}},
		{"braces", "{}", []token.Kind{token.LBrace, token.RBrace}},
		{"angle", "<>", []token.Kind{token.Lt, token.Gt}},
		{"double_colon", "a::b", []token.Kind{token.Ident, token.ColonColon, token.Ident}},
		{"colon", "a:b", []token.Kind{token.Ident, token.Colon, token.Ident}},
		{"decorator", "@version(1.0.0+)", []token.Kind{
			token.At, token.Ident, token.LParen,
			token.NumLit, token.Dot, token.NumLit, token.Dot, token.NumLit,
			token.Plus, token.RParen,
		}},
		{"command_head", "[12] Get", []token.Kind{token.LBracket, token.NumLit, token.RBracket, token.Ident}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, bag := lexAll(t, tt.input)
			if bag.HasErrors() {
				t.Fatalf("unexpected errors: %v", bag.Items())
			}
			got := kinds(tokens)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d tokens %v, want %d", len(got), got, len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("token %d: got %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestSpacedDoubleColonLexesLikeTight(t *testing.T) {
	tight, _ := lexAll(t, "a::b")
	spaced, _ := lexAll(t, "a :: b")

	if len(tight) != len(spaced) {
		t.Fatalf("token counts differ: %d vs %d", len(tight), len(spaced))
	}
	for i := range tight {
		if tight[i].Kind != spaced[i].Kind || tight[i].Text != spaced[i].Text {
			t.Errorf("token %d differs: %v %q vs %v %q",
				i, tight[i].Kind, tight[i].Text, spaced[i].Kind, spaced[i].Text)
		}
	}
}

func TestTokenSpans(t *testing.T) {
	tokens, _ := lexAll(t, "type ab = u8;")
	wantSpans := []struct{ start, end uint32 }{
		{0, 4},   // type
		{5, 7},   // ab
		{8, 9},   // =
		{10, 12}, // u8
		{12, 13}, // ;
	}
	if len(tokens) != len(wantSpans) {
		t.Fatalf("got %d tokens", len(tokens))
	}
	for i, w := range wantSpans {
		if tokens[i].Span.Start != w.start || tokens[i].Span.End != w.end {
			t.Errorf("token %d span = %d-%d, want %d-%d",
				i, tokens[i].Span.Start, tokens[i].Span.End, w.start, w.end)
		}
	}
}

func TestNumLitValues(t *testing.T) {
	tests := []struct {
		input string
		want  uint64
	}{
		{"0", 0},
		{"123", 123},
		{"0x10", 16},
		{"0xFFFFFFFFFFFFFFFF", 0xFFFFFFFFFFFFFFFF},
		{"18446744073709551615", 18446744073709551615},
	}
	for _, tt := range tests {
		tokens, bag := lexAll(t, tt.input)
		if bag.HasErrors() {
			t.Errorf("%q: unexpected errors", tt.input)
			continue
		}
		v, ok := NumLitValue(tokens[0])
		if !ok || v != tt.want {
			t.Errorf("NumLitValue(%q) = %d, %v; want %d", tt.input, v, ok, tt.want)
		}
	}
}

func TestNumLitOverflowIsLexical(t *testing.T) {
	tests := []string{
		"18446744073709551616",  // 2^64
		"0x10000000000000000",   // 2^64
		"999999999999999999999", // way over
	}
	for _, input := range tests {
		tokens, bag := lexAll(t, input)
		if !bag.HasErrors() {
			t.Errorf("%q: expected an overflow error", input)
		}
		if len(tokens) != 1 || tokens[0].Kind != token.Invalid {
			t.Errorf("%q: expected one Invalid token, got %v", input, kinds(tokens))
		}
	}
}

func TestBadHexDigit(t *testing.T) {
	_, bag := lexAll(t, "0x")
	if !bag.HasErrors() {
		t.Error("expected an error for bare 0x")
	}
}

func TestServiceNameErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"unterminated", `"fsp-srv`},
		{"newline_inside", "\"fsp\nsrv\""},
		{"bad_char", `"fsp srv"`},
		{"bad_char_dot", `"a.b"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, bag := lexAll(t, tt.input)
			if !bag.HasErrors() {
				t.Error("expected a lexical error")
			}
		})
	}
}

func TestUnknownChar(t *testing.T) {
	tokens, bag := lexAll(t, "$")
	if !bag.HasErrors() {
		t.Error("expected an error")
	}
	if len(tokens) != 1 || tokens[0].Kind != token.Invalid {
		t.Errorf("got %v", kinds(tokens))
	}
}

func TestCommentsAreTrivia(t *testing.T) {
	src := "// line comment\n/* block */ type"
	tokens, bag := lexAll(t, src)
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Items())
	}
	if len(tokens) != 1 || !tokens[0].IsIdent("type") {
		t.Fatalf("got %v", kinds(tokens))
	}

	var sawLine, sawBlock bool
	for _, tr := range tokens[0].Leading {
		switch tr.Kind {
		case token.TriviaLineComment:
			sawLine = true
		case token.TriviaBlockComment:
			sawBlock = true
		}
	}
	if !sawLine || !sawBlock {
		t.Errorf("leading trivia = %+v", tokens[0].Leading)
	}
}

func TestDocLineAttachesToNextToken(t *testing.T) {
	src := "/// Returns a handle.\nstruct"
	tokens, bag := lexAll(t, src)
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Items())
	}
	if len(tokens) != 1 {
		t.Fatalf("got %d tokens", len(tokens))
	}

	var doc *token.Trivia
	for i := range tokens[0].Leading {
		if tokens[0].Leading[i].IsDoc() {
			doc = &tokens[0].Leading[i]
		}
	}
	if doc == nil {
		t.Fatal("no doc trivia attached")
	}
	if doc.Text != "/// Returns a handle." {
		t.Errorf("doc text = %q", doc.Text)
	}
}

func TestNestedBlockComment(t *testing.T) {
	tokens, bag := lexAll(t, "/* outer /* inner */ still outer */ x")
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Items())
	}
	if len(tokens) != 1 || !tokens[0].IsIdent("x") {
		t.Fatalf("got %v", kinds(tokens))
	}
}

func TestUnterminatedBlockComment(t *testing.T) {
	_, bag := lexAll(t, "/* never closed")
	if !bag.HasErrors() {
		t.Error("expected an error")
	}
}

func TestPeekDoesNotConsume(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.id", []byte("a b"))
	lx := New(fs.Get(id), Options{})

	p1 := lx.Peek()
	p2 := lx.Peek()
	if p1.Text != "a" || p2.Text != "a" {
		t.Errorf("Peek consumed: %q then %q", p1.Text, p2.Text)
	}
	n := lx.Next()
	if n.Text != "a" {
		t.Errorf("Next() = %q", n.Text)
	}
	if lx.Next().Text != "b" {
		t.Error("stream out of order after Peek")
	}
}

func TestEOFIsSticky(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.id", []byte(""))
	lx := New(fs.Get(id), Options{})

	for i := 0; i < 3; i++ {
		if tok := lx.Next(); tok.Kind != token.EOF {
			t.Fatalf("call %d: got %v", i, tok.Kind)
		}
	}
}
