package ast

import (
	"testing"

	"swipc/internal/diag"
)

func TestNewEnumValid(t *testing.T) {
	arms := []EnumArm{
		{Name: "A", Value: 0, Span: sp(10, 15)},
		{Name: "B", Value: 255, Span: sp(16, 23)},
	}
	e, diags := NewEnum(NewNamespacedIdent("ns", "E"), U8, arms, sp(0, 30))
	if diags != nil {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	if e.Base != U8 || len(e.Arms) != 2 {
		t.Errorf("enum = %+v", e)
	}
}

func TestNewEnumDuplicateArmName(t *testing.T) {
	arms := []EnumArm{
		{Name: "A", Value: 0, Span: sp(10, 15)},
		{Name: "A", Value: 1, Span: sp(16, 21)},
	}
	e, diags := NewEnum(NewNamespacedIdent("E"), U8, arms, sp(0, 30))
	if e != nil || len(diags) != 1 {
		t.Fatalf("e=%v diags=%v", e, diags)
	}
	if diags[0].Code != diag.MdlDuplicateArm {
		t.Errorf("code = %v", diags[0].Code)
	}
	if diags[0].PrimarySpan() != arms[1].Span {
		t.Errorf("primary = %v", diags[0].PrimarySpan())
	}
}

func TestNewEnumDuplicateValuesAllowed(t *testing.T) {
	arms := []EnumArm{
		{Name: "A", Value: 1, Span: sp(10, 15)},
		{Name: "B", Value: 1, Span: sp(16, 21)},
	}
	e, diags := NewEnum(NewNamespacedIdent("E"), U8, arms, sp(0, 30))
	if diags != nil {
		t.Fatalf("aliasing arm values must be accepted, got %v", diags)
	}
	if len(e.Arms) != 2 {
		t.Errorf("arms = %+v", e.Arms)
	}
}

func TestNewEnumArmValueRange(t *testing.T) {
	tests := []struct {
		name  string
		base  IntType
		value uint64
		fits  bool
	}{
		{"u8_max", U8, 255, true},
		{"u8_over", U8, 256, false},
		{"u16_over", U16, 0x10000, false},
		{"u32_max", U32, 0xFFFFFFFF, true},
		{"u64_max", U64, 0xFFFFFFFFFFFFFFFF, true},
		{"i8_max", I8, 127, true},
		{"i8_over", I8, 128, false},
		{"i64_max", I64, 0x7FFFFFFFFFFFFFFF, true},
		{"i64_over", I64, 0x8000000000000000, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			arms := []EnumArm{{Name: "A", Value: tt.value, Span: sp(5, 10)}}
			_, diags := NewEnum(NewNamespacedIdent("E"), tt.base, arms, sp(0, 20))
			if tt.fits && diags != nil {
				t.Errorf("unexpected diagnostics: %v", diags)
			}
			if !tt.fits {
				if len(diags) != 1 || diags[0].Code != diag.MdlArmValueRange {
					t.Errorf("diags = %v", diags)
				}
			}
		})
	}
}

func TestNewBitflagsChecksMirrorEnum(t *testing.T) {
	arms := []BitflagsArm{
		{Name: "Read", Value: 1, Span: sp(10, 18)},
		{Name: "Write", Value: 2, Span: sp(19, 28)},
		{Name: "Read", Value: 4, Span: sp(29, 37)},
	}
	b, diags := NewBitflags(NewNamespacedIdent("ns", "F"), U32, arms, sp(0, 40))
	if b != nil || len(diags) != 1 {
		t.Fatalf("b=%v diags=%v", b, diags)
	}
	if diags[0].Code != diag.MdlDuplicateArm {
		t.Errorf("code = %v", diags[0].Code)
	}
}
