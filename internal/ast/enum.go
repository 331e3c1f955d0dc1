package ast

import (
	"fmt"

	"swipc/internal/diag"
	"swipc/internal/source"
)

// EnumArm is one named discriminant value.
type EnumArm struct {
	Name  string
	Value uint64
	Span  source.Span
}

// Enum is a tagged enumeration over an integer base type. Arm order is
// preserved from the source.
type Enum struct {
	Name NamespacedIdent
	Base IntType
	Arms []EnumArm
	Span source.Span
}

// NewEnum validates and builds an enum: arm names must be unique and every
// arm value must be representable in the base type. Duplicate arm values
// are allowed; downstream consumers decide whether aliasing arms matter.
func NewEnum(name NamespacedIdent, base IntType, arms []EnumArm, span source.Span) (*Enum, []diag.Diagnostic) {
	diags := checkArms("enum", base, arms)
	if diags != nil {
		return nil, diags
	}
	return &Enum{Name: name, Base: base, Arms: arms, Span: span}, nil
}

// checkArms is shared between enums and bitflags: both demand unique arm
// names and base-representable values.
func checkArms(what string, base IntType, arms []EnumArm) []diag.Diagnostic {
	var diags []diag.Diagnostic
	seen := make(map[string]int, len(arms))
	for i, arm := range arms {
		if prev, ok := seen[arm.Name]; ok {
			diags = append(diags,
				diag.New(diag.SevError, diag.MdlDuplicateArm, arm.Span,
					"duplicate "+what+" arm named `"+arm.Name+"`").
					WithSecondary(arms[prev].Span, "previously defined here"))
		} else {
			seen[arm.Name] = i
		}
		if !base.FitsU64(arm.Value) {
			diags = append(diags,
				diag.NewError(diag.MdlArmValueRange, arm.Span,
					fmt.Sprintf("value %d of arm `%s` does not fit into type %s", arm.Value, arm.Name, base)))
		}
	}
	return diags
}

func (e *Enum) ItemSpan() source.Span { return e.Span }

func (e *Enum) ItemName() NamespacedIdent { return e.Name }

func (*Enum) isItem() {}
