package ast

import (
	"swipc/internal/diag"
	"swipc/internal/source"
)

// Item is the closed sum of top-level declarations: *TypeAlias, *Struct,
// *Enum, *Bitflags, *Interface.
type Item interface {
	ItemSpan() source.Span
	ItemName() NamespacedIdent
	isItem()
}

// IpcFile is one parsed definition file. Item order is preserved from the
// source; it matters only for diagnostic stability, not semantics.
type IpcFile struct {
	Items []Item
}

// NewIpcFile validates and builds the file: type names (aliases, structs,
// enums, bitflags share one namespace) and interface names must each be
// defined at most once.
func NewIpcFile(items []Item) (*IpcFile, []diag.Diagnostic) {
	var diags []diag.Diagnostic

	types := make(map[string]Item)
	ifaces := make(map[string]Item)

	for _, item := range items {
		name := item.ItemName().String()
		switch item.(type) {
		case *Interface:
			if prev, ok := ifaces[name]; ok {
				diags = append(diags,
					diag.New(diag.SevError, diag.MdlDuplicateInterface, item.ItemSpan(),
						"multiple definitions of interface `"+name+"`").
						WithSecondary(prev.ItemSpan(), "previous definition of interface `"+name+"`"))
				continue
			}
			ifaces[name] = item
		default:
			if prev, ok := types[name]; ok {
				diags = append(diags,
					diag.New(diag.SevError, diag.MdlDuplicateTypeName, item.ItemSpan(),
						"multiple definitions of type `"+name+"`").
						WithSecondary(prev.ItemSpan(), "previous definition of type `"+name+"`"))
				continue
			}
			types[name] = item
		}
	}

	if diags != nil {
		return nil, diags
	}
	return &IpcFile{Items: items}, nil
}
