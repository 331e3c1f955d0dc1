package token

// Reserved surface spellings. None of these are lexed specially — the
// lexer emits Ident and the parser matches by text — but a declaration may
// not reuse them as its own name.
var reserved = map[string]struct{}{
	"struct":    {},
	"enum":      {},
	"bitflags":  {},
	"interface": {},
	"type":      {},
	"is":        {},
	"u8":        {},
	"u16":       {},
	"u32":       {},
	"u64":       {},
	"i8":        {},
	"i16":       {},
	"i32":       {},
	"i64":       {},
	"s8":        {},
	"s16":       {},
	"s32":       {},
	"s64":       {},
	"b8":        {},
	"bool":      {},
	"f32":       {},
}

// IsReserved reports whether ident is a reserved spelling. Matching is
// case-sensitive: only the exact lowercase forms are reserved.
func IsReserved(ident string) bool {
	_, ok := reserved[ident]
	return ok
}
