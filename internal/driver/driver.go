// Package driver orchestrates the front-end over real files: loading,
// tokenizing, parsing, parallel directory runs, and the result cache.
package driver

import (
	"swipc/internal/ast"
	"swipc/internal/diag"
	"swipc/internal/lexer"
	"swipc/internal/parser"
	"swipc/internal/source"
	"swipc/internal/token"
)

// ParseResult is the outcome of parsing one file. File is nil exactly when
// the bag carries errors.
type ParseResult struct {
	FileSet *source.FileSet
	FileID  source.FileID
	File    *ast.IpcFile
	Bag     *diag.Bag
}

// Parse loads one definition file from disk and parses it.
func Parse(path string, maxDiagnostics int) (*ParseResult, error) {
	fs := source.NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	return parseIn(fs, id, maxDiagnostics), nil
}

// ParseBytes parses an in-memory buffer under a display name.
func ParseBytes(name string, src []byte, maxDiagnostics int) *ParseResult {
	fs := source.NewFileSet()
	id := fs.AddVirtual(name, src)
	return parseIn(fs, id, maxDiagnostics)
}

func parseIn(fs *source.FileSet, id source.FileID, maxDiagnostics int) *ParseResult {
	file, bag := parser.ParseFile(fs.Get(id), parser.Options{MaxDiagnostics: maxDiagnostics})
	return &ParseResult{
		FileSet: fs,
		FileID:  id,
		File:    file,
		Bag:     bag,
	}
}

// TokenizeResult is the outcome of tokenizing one file.
type TokenizeResult struct {
	FileSet *source.FileSet
	FileID  source.FileID
	Tokens  []token.Token
	Bag     *diag.Bag
}

// Tokenize loads one definition file and produces its full token stream,
// EOF excluded.
func Tokenize(path string, maxDiagnostics int) (*TokenizeResult, error) {
	fs := source.NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		return nil, err
	}

	bag := diag.NewBag(maxDiagnostics)
	lx := lexer.New(fs.Get(id), lexer.Options{Reporter: diag.BagReporter{Bag: bag}})

	var tokens []token.Token
	for {
		tok := lx.Next()
		if tok.Kind == token.EOF {
			break
		}
		tokens = append(tokens, tok)
	}

	return &TokenizeResult{
		FileSet: fs,
		FileID:  id,
		Tokens:  tokens,
		Bag:     bag,
	}, nil
}
