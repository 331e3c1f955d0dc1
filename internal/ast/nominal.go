package ast

import (
	"fmt"

	"swipc/internal/diag"
	"swipc/internal/source"
)

// NominalKind discriminates the closed set of type expressions that may
// appear in struct fields and type aliases.
type NominalKind uint8

const (
	NominalInt NominalKind = iota
	NominalBool
	NominalF32
	NominalBytes
	NominalUnknown
	NominalTypeName
)

// Nominal is a type expression: a primitive scalar, an opaque byte blob, an
// unknown placeholder, or a reference to a named declaration. Nominal types
// are deliberately closed — adding a primitive is a grammar and model
// change, never an ad-hoc string.
type Nominal struct {
	Kind NominalKind

	Int IntType // NominalInt

	Size      uint64 // NominalBytes; NominalUnknown when HasSize
	Alignment uint64 // NominalBytes
	HasSize   bool   // NominalUnknown

	Name NamespacedIdent // NominalTypeName
	Ref  source.Span     // NominalTypeName: where the reference appears
}

func Int(t IntType) Nominal {
	return Nominal{Kind: NominalInt, Int: t}
}

func Bool() Nominal {
	return Nominal{Kind: NominalBool}
}

func F32() Nominal {
	return Nominal{Kind: NominalF32}
}

// Unknown builds an unknown type of optionally known size.
func Unknown(size *uint64) Nominal {
	n := Nominal{Kind: NominalUnknown}
	if size != nil {
		n.Size = *size
		n.HasSize = true
	}
	return n
}

// TypeName builds a reference to a named declaration. The span covers the
// referencing tokens, not the declaration.
func TypeName(name NamespacedIdent, ref source.Span) Nominal {
	return Nominal{Kind: NominalTypeName, Name: name, Ref: ref}
}

// bytesAlignments is the closed set of alignments a Bytes blob may request.
var bytesAlignments = map[uint64]struct{}{1: {}, 2: {}, 4: {}, 8: {}, 16: {}}

// NewBytes validates and builds a Bytes type. Size must be non-zero and
// alignment one of 1, 2, 4, 8, 16; alignment 0 means "not written" and
// defaults to 1. span covers the bytes type expression for labelling.
func NewBytes(size, alignment uint64, span source.Span) (Nominal, []diag.Diagnostic) {
	var diags []diag.Diagnostic
	if size == 0 {
		diags = append(diags, diag.NewError(diag.MdlBytesZeroSize, span,
			"bytes type must have a size of at least 1"))
	}
	if alignment == 0 {
		alignment = 1
	}
	if _, ok := bytesAlignments[alignment]; !ok {
		diags = append(diags, diag.NewError(diag.MdlBadAlignment, span,
			fmt.Sprintf("alignment must be one of 1, 2, 4, 8, 16; got %d", alignment)))
	}
	if diags != nil {
		return Nominal{}, diags
	}
	return Nominal{Kind: NominalBytes, Size: size, Alignment: alignment}, nil
}

// Equal compares two nominal types structurally, ignoring reference spans.
func (n Nominal) Equal(other Nominal) bool {
	if n.Kind != other.Kind {
		return false
	}
	switch n.Kind {
	case NominalInt:
		return n.Int == other.Int
	case NominalBool, NominalF32:
		return true
	case NominalBytes:
		return n.Size == other.Size && n.Alignment == other.Alignment
	case NominalUnknown:
		return n.HasSize == other.HasSize && (!n.HasSize || n.Size == other.Size)
	case NominalTypeName:
		return n.Name.Equal(other.Name)
	}
	return false
}

func (n Nominal) String() string {
	switch n.Kind {
	case NominalInt:
		return n.Int.String()
	case NominalBool:
		return "bool"
	case NominalF32:
		return "f32"
	case NominalBytes:
		return fmt.Sprintf("sf::Bytes<0x%x, %d>", n.Size, n.Alignment)
	case NominalUnknown:
		if n.HasSize {
			return fmt.Sprintf("sf::Unknown<0x%x>", n.Size)
		}
		return "sf::Unknown"
	case NominalTypeName:
		return n.Name.String()
	}
	return "?"
}
