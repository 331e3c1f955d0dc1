package parser

import (
	"swipc/internal/ast"
	"swipc/internal/diag"
	"swipc/internal/lexer"
	"swipc/internal/source"
	"swipc/internal/token"
)

// Options configures one parse invocation.
type Options struct {
	MaxDiagnostics int
}

// Parser holds the state for one file. Parsing is a pure CPU-bound
// function; a Parser is used once and thrown away.
//
// Error policy: the first syntactic error halts the parse (no recovery is
// attempted). Structural errors raised by the model constructors during a
// reduction are collected and parsing continues, so several invalid items
// surface together.
type Parser struct {
	lx       *lexer.Lexer
	bag      *diag.Bag
	fatal    bool
	lastSpan source.Span

	// structural diagnostics raised while reducing the current item, to be
	// enriched with the item span once it is known
	pendingStructural []diag.Diagnostic
}

func newParser(file *source.File, opts Options) *Parser {
	bag := diag.NewBag(opts.MaxDiagnostics)
	lx := lexer.New(file, lexer.Options{Reporter: diag.BagReporter{Bag: bag}})
	return &Parser{
		lx:       lx,
		bag:      bag,
		lastSpan: lx.EmptySpan(),
	}
}

// ParseFile parses one whole definition file. On success the bag carries no
// errors and the file is non-nil; on failure the file is nil and the bag is
// non-empty. A partial model is never returned.
func ParseFile(file *source.File, opts Options) (*ast.IpcFile, *diag.Bag) {
	p := newParser(file, opts)

	var items []ast.Item
	for !p.at(token.EOF) && !p.fatal {
		item, ok := p.parseItem()
		if !ok {
			break
		}
		if item != nil {
			items = append(items, item)
		}
	}

	if p.bag.HasErrors() {
		return nil, p.bag
	}

	ipcFile, diags := ast.NewIpcFile(items)
	if diags != nil {
		p.bag.AddAll(diags)
		return nil, p.bag
	}
	return ipcFile, p.bag
}

// ParseStructDef parses a source consisting of exactly one struct
// definition.
func ParseStructDef(file *source.File, opts Options) (*ast.Struct, *diag.Bag) {
	p := newParser(file, opts)
	s, _ := p.parseStructDef()
	p.expectEOF()
	if p.bag.HasErrors() {
		return nil, p.bag
	}
	return s, p.bag
}

// ParseEnumDef parses a source consisting of exactly one enum definition.
func ParseEnumDef(file *source.File, opts Options) (*ast.Enum, *diag.Bag) {
	p := newParser(file, opts)
	e, _ := p.parseEnumDef()
	p.expectEOF()
	if p.bag.HasErrors() {
		return nil, p.bag
	}
	return e, p.bag
}

// ParseBitflagsDef parses a source consisting of exactly one bitflags
// definition.
func ParseBitflagsDef(file *source.File, opts Options) (*ast.Bitflags, *diag.Bag) {
	p := newParser(file, opts)
	b, _ := p.parseBitflagsDef()
	p.expectEOF()
	if p.bag.HasErrors() {
		return nil, p.bag
	}
	return b, p.bag
}

// ParseInterfaceDef parses a source consisting of exactly one interface
// definition.
func ParseInterfaceDef(file *source.File, opts Options) (*ast.Interface, *diag.Bag) {
	p := newParser(file, opts)
	i, _ := p.parseInterfaceDef()
	p.expectEOF()
	if p.bag.HasErrors() {
		return nil, p.bag
	}
	return i, p.bag
}

// parseItem dispatches on the leading keyword of a top-level declaration.
// A nil item with ok=true means the item failed structural validation and
// was reported; the file parse goes on.
func (p *Parser) parseItem() (ast.Item, bool) {
	tok := p.peek()
	if tok.Kind != token.Ident {
		p.syntaxErr("`type`, `struct`, `enum`, `bitflags`, or `interface`")
		return nil, false
	}
	switch tok.Text {
	case "type":
		alias, ok := p.parseTypeAlias()
		return itemOrNil(alias, ok)
	case "struct":
		s, ok := p.parseStructDef()
		return itemOrNil(s, ok)
	case "enum":
		e, ok := p.parseEnumDef()
		return itemOrNil(e, ok)
	case "bitflags":
		b, ok := p.parseBitflagsDef()
		return itemOrNil(b, ok)
	case "interface":
		i, ok := p.parseInterfaceDef()
		return itemOrNil(i, ok)
	default:
		p.syntaxErr("`type`, `struct`, `enum`, `bitflags`, or `interface`")
		return nil, false
	}
}

// itemOrNil keeps typed nils of failed constructors out of the item list.
func itemOrNil[T any, PT interface {
	*T
	ast.Item
}](v PT, ok bool) (ast.Item, bool) {
	if !ok || v == nil {
		return nil, ok
	}
	return v, true
}
