package diagfmt

import (
	"fmt"
	"sort"
	"strings"

	"swipc/internal/diag"
	"swipc/internal/source"
)

type shortEntry struct {
	Severity string
	Code     string
	Path     string
	Line     uint32
	Column   uint32
	Message  string
}

// FormatShort renders diagnostics one line per entry in a stable order,
// suitable for CLI short output and test assertions:
//
//	ERROR MDL3001 defs/sm.id:3:9 duplicate struct field `a`
func FormatShort(bag *diag.Bag, fs *source.FileSet) string {
	if fs == nil || bag.Len() == 0 {
		return ""
	}

	entries := make([]shortEntry, 0, bag.Len())
	for _, d := range bag.Items() {
		sp := d.PrimarySpan()
		file := fs.Get(sp.File)
		if file == nil {
			continue
		}
		start, _ := fs.Resolve(sp)
		entries = append(entries, shortEntry{
			Severity: d.Severity.String(),
			Code:     d.Code.ID(),
			Path:     file.Path,
			Line:     start.Line,
			Column:   start.Col,
			Message:  d.Message,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		ei, ej := entries[i], entries[j]
		if ei.Path != ej.Path {
			return ei.Path < ej.Path
		}
		if ei.Line != ej.Line {
			return ei.Line < ej.Line
		}
		if ei.Column != ej.Column {
			return ei.Column < ej.Column
		}
		if ei.Severity != ej.Severity {
			return ei.Severity < ej.Severity
		}
		if ei.Code != ej.Code {
			return ei.Code < ej.Code
		}
		return ei.Message < ej.Message
	})

	var b strings.Builder
	for i, e := range entries {
		fmt.Fprintf(&b, "%s %s %s:%d:%d %s", e.Severity, e.Code, e.Path, e.Line, e.Column, e.Message)
		if i < len(entries)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
