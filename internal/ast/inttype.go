package ast

import "math"

// IntType is one of the eight primitive integer scalars. The surface forms
// s8..s64 are aliases of i8..i64 and normalize to the latter.
type IntType uint8

const (
	U8 IntType = iota
	U16
	U32
	U64
	I8
	I16
	I32
	I64
)

var intTypeNames = [...]string{
	U8:  "u8",
	U16: "u16",
	U32: "u32",
	U64: "u64",
	I8:  "i8",
	I16: "i16",
	I32: "i32",
	I64: "i64",
}

func (t IntType) String() string {
	if int(t) < len(intTypeNames) {
		return intTypeNames[t]
	}
	return "int?"
}

func (t IntType) IsSigned() bool {
	return t >= I8
}

// MaxValue returns the largest non-negative value representable by the
// type. For signed types that is the positive half of the range; literals
// are unsigned, so negative values are not expressible anyway.
func (t IntType) MaxValue() uint64 {
	switch t {
	case U8:
		return math.MaxUint8
	case U16:
		return math.MaxUint16
	case U32:
		return math.MaxUint32
	case U64:
		return math.MaxUint64
	case I8:
		return math.MaxInt8
	case I16:
		return math.MaxInt16
	case I32:
		return math.MaxInt32
	case I64:
		return math.MaxInt64
	}
	return 0
}

// FitsU64 reports whether value is representable in the type.
func (t IntType) FitsU64(value uint64) bool {
	return value <= t.MaxValue()
}

// IntTypeByName maps a surface spelling to its IntType, folding the s-
// aliases onto the signed types.
func IntTypeByName(name string) (IntType, bool) {
	switch name {
	case "u8":
		return U8, true
	case "u16":
		return U16, true
	case "u32":
		return U32, true
	case "u64":
		return U64, true
	case "i8", "s8":
		return I8, true
	case "i16", "s16":
		return I16, true
	case "i32", "s32":
		return I32, true
	case "i64", "s64":
		return I64, true
	}
	return 0, false
}
