package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// Lexical
	LexUnknownChar              Code = 1001
	LexUnterminatedString       Code = 1002
	LexUnterminatedBlockComment Code = 1003
	LexBadNumber                Code = 1004
	LexIntOverflow              Code = 1005
	LexBadServiceName           Code = 1006

	// Syntactic
	SynUnexpectedToken Code = 2001
	SynUnexpectedEOF   Code = 2002

	// Model (structural validation during reduction)
	MdlDuplicateField       Code = 3001
	MdlConflictingMarkers   Code = 3002
	MdlDuplicateArm         Code = 3003
	MdlArmValueRange        Code = 3004
	MdlCommandIDRange       Code = 3005
	MdlBytesZeroSize        Code = 3006
	MdlBadAlignment         Code = 3007
	MdlServiceNameTooLong   Code = 3008
	MdlDuplicateCommandName Code = 3009
	MdlDuplicateCommandID   Code = 3010
	MdlDuplicateTypeName    Code = 3011
	MdlDuplicateInterface   Code = 3012
	MdlUnknownMarker        Code = 3013

	// IO / driver
	IoReadFailed Code = 4001

	// Internal invariants
	BugInternal Code = 9001
)

var codeDescription = map[Code]string{
	UnknownCode: "unknown error",

	LexUnknownChar:              "unrecognized character",
	LexUnterminatedString:       "unterminated service name literal",
	LexUnterminatedBlockComment: "unterminated block comment",
	LexBadNumber:                "malformed numeric literal",
	LexIntOverflow:              "numeric literal does not fit in 64 bits",
	LexBadServiceName:           "invalid character in service name literal",

	SynUnexpectedToken: "unexpected token",
	SynUnexpectedEOF:   "unexpected end of input",

	MdlDuplicateField:       "duplicate struct field",
	MdlConflictingMarkers:   "conflicting struct markers",
	MdlDuplicateArm:         "duplicate arm name",
	MdlArmValueRange:        "arm value does not fit the base type",
	MdlCommandIDRange:       "command id does not fit in 32 bits",
	MdlBytesZeroSize:        "bytes type must have a non-zero size",
	MdlBadAlignment:         "unsupported bytes alignment",
	MdlServiceNameTooLong:   "service name longer than 8 characters",
	MdlDuplicateCommandName: "duplicate command name",
	MdlDuplicateCommandID:   "duplicate command id",
	MdlDuplicateTypeName:    "multiple definitions of type",
	MdlDuplicateInterface:   "multiple definitions of interface",
	MdlUnknownMarker:        "unknown struct marker",

	IoReadFailed: "could not read input file",

	BugInternal: "internal invariant broken",
}

// ID returns the stable, grep-friendly identifier of the code.
func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("MDL%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	case ic >= 9000:
		return fmt.Sprintf("BUG%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
