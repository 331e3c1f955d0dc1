package ast

import (
	"swipc/internal/diag"
	"swipc/internal/source"
)

// BitflagsArm is one named bit pattern.
type BitflagsArm = EnumArm

// Bitflags is a bag of named bit patterns over an integer base type.
type Bitflags struct {
	Name NamespacedIdent
	Base IntType
	Arms []BitflagsArm
	Span source.Span
}

// NewBitflags validates and builds a bitflags declaration under the same
// rules as NewEnum.
func NewBitflags(name NamespacedIdent, base IntType, arms []BitflagsArm, span source.Span) (*Bitflags, []diag.Diagnostic) {
	diags := checkArms("bitflags", base, arms)
	if diags != nil {
		return nil, diags
	}
	return &Bitflags{Name: name, Base: base, Arms: arms, Span: span}, nil
}

func (b *Bitflags) ItemSpan() source.Span { return b.Span }

func (b *Bitflags) ItemName() NamespacedIdent { return b.Name }

func (*Bitflags) isItem() {}
