package parser

import (
	"strings"
	"testing"

	"swipc/internal/ast"
	"swipc/internal/diag"
	"swipc/internal/source"
)

func newTestFile(t *testing.T, src string) (*source.File, *source.FileSet) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.id", []byte(src))
	return fs.Get(id), fs
}

func parseFileSrc(t *testing.T, src string) (*ast.IpcFile, *diag.Bag) {
	t.Helper()
	f, _ := newTestFile(t, src)
	return ParseFile(f, Options{})
}

// mustParseFile fails the test when the source does not parse cleanly.
func mustParseFile(t *testing.T, src string) *ast.IpcFile {
	t.Helper()
	file, bag := parseFileSrc(t, src)
	if file == nil {
		t.Fatalf("parse failed: %v", bag.Items())
	}
	return file
}

// mustFail asserts the parse produced errors and returns them.
func mustFail(t *testing.T, src string) []diag.Diagnostic {
	t.Helper()
	file, bag := parseFileSrc(t, src)
	if file != nil {
		t.Fatal("expected the parse to fail")
	}
	if !bag.HasErrors() {
		t.Fatal("failed parse must carry at least one error")
	}
	return bag.Items()
}

// spanCovers reports whether sp covers the byte range of needle's n-th
// occurrence (0-based) in src.
func spanCovers(src string, sp source.Span, needle string, occurrence int) bool {
	idx := -1
	from := 0
	for i := 0; i <= occurrence; i++ {
		j := strings.Index(src[from:], needle)
		if j < 0 {
			return false
		}
		idx = from + j
		from = idx + 1
	}
	return int(sp.Start) <= idx && idx+len(needle) <= int(sp.End)
}

// spanIs reports whether sp matches exactly the byte range of needle's
// n-th occurrence in src.
func spanIs(src string, sp source.Span, needle string, occurrence int) bool {
	idx := -1
	from := 0
	for i := 0; i <= occurrence; i++ {
		j := strings.Index(src[from:], needle)
		if j < 0 {
			return false
		}
		idx = from + j
		from = idx + 1
	}
	return int(sp.Start) == idx && int(sp.End) == idx+len(needle)
}

func singleItem[T ast.Item](t *testing.T, src string) T {
	t.Helper()
	file := mustParseFile(t, src)
	if len(file.Items) != 1 {
		t.Fatalf("got %d items, want 1", len(file.Items))
	}
	item, ok := file.Items[0].(T)
	if !ok {
		t.Fatalf("item has type %T", file.Items[0])
	}
	return item
}
