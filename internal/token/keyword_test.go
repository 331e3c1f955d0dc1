package token

import "testing"

func TestIsReserved(t *testing.T) {
	reservedWords := []string{
		"struct", "enum", "bitflags", "interface", "type", "is",
		"u8", "u16", "u32", "u64",
		"i8", "i16", "i32", "i64",
		"s8", "s16", "s32", "s64",
		"b8", "bool", "f32",
	}
	for _, w := range reservedWords {
		if !IsReserved(w) {
			t.Errorf("IsReserved(%q) = false", w)
		}
	}

	notReserved := []string{"sf", "Struct", "U8", "float", "ncm", "ProgramId", "pid", ""}
	for _, w := range notReserved {
		if IsReserved(w) {
			t.Errorf("IsReserved(%q) = true", w)
		}
	}
}
