package ast

import (
	"fmt"
	"math"

	"swipc/internal/diag"
	"swipc/internal/source"
)

// Argument is one (optionally named) command argument.
type Argument struct {
	Name  string // "" when the argument is unnamed
	Value Value
	Span  source.Span
}

// Command is a single numbered RPC operation.
type Command struct {
	ID   uint32
	Name string
	Args []Argument
	Span source.Span
}

// NewCommand validates and builds a command. The raw id comes from a
// numeric literal and must fit in an unsigned 32-bit integer.
func NewCommand(id uint64, idSpan source.Span, name string, args []Argument, span source.Span) (*Command, []diag.Diagnostic) {
	if id > math.MaxUint32 {
		return nil, []diag.Diagnostic{
			diag.NewError(diag.MdlCommandIDRange, idSpan,
				fmt.Sprintf("command id %d does not fit in 32 bits", id)),
		}
	}
	return &Command{ID: uint32(id), Name: name, Args: args, Span: span}, nil
}

// SMName is one quoted service name with its span.
type SMName struct {
	Name string
	Span source.Span
}

// maxServiceNameLen bounds service manager names on the wire.
const maxServiceNameLen = 8

// Interface is one service surface: zero or more service names it is
// registered under, plus its ordered commands. IsDomain has no surface
// syntax and stays false.
type Interface struct {
	Name     NamespacedIdent
	SMNames  []string
	Commands []Command
	IsDomain bool
	Span     source.Span
}

// NewInterface validates and builds an interface: service names are at most
// 8 characters, and command names and ids must be unique within the
// interface.
func NewInterface(name NamespacedIdent, smNames []SMName, commands []Command, span source.Span) (*Interface, []diag.Diagnostic) {
	var diags []diag.Diagnostic

	names := make([]string, len(smNames))
	for i, sm := range smNames {
		names[i] = sm.Name
		if len(sm.Name) > maxServiceNameLen {
			diags = append(diags,
				diag.NewError(diag.MdlServiceNameTooLong, sm.Span,
					fmt.Sprintf("service name %q is %d characters long; the limit is %d", sm.Name, len(sm.Name), maxServiceNameLen)))
		}
	}

	byName := make(map[string]int, len(commands))
	byID := make(map[uint32]int, len(commands))
	for i, cmd := range commands {
		if prev, ok := byName[cmd.Name]; ok {
			diags = append(diags,
				diag.New(diag.SevError, diag.MdlDuplicateCommandName, cmd.Span,
					"duplicate command named `"+cmd.Name+"`").
					WithSecondary(commands[prev].Span, "previous definition here"))
		} else {
			byName[cmd.Name] = i
		}
		if prev, ok := byID[cmd.ID]; ok {
			diags = append(diags,
				diag.New(diag.SevError, diag.MdlDuplicateCommandID, cmd.Span,
					fmt.Sprintf("duplicate command with id %d", cmd.ID)).
					WithSecondary(commands[prev].Span, "previous definition here"))
		} else {
			byID[cmd.ID] = i
		}
	}

	if diags != nil {
		return nil, diags
	}
	return &Interface{Name: name, SMNames: names, Commands: commands, Span: span}, nil
}

func (i *Interface) ItemSpan() source.Span { return i.Span }

func (i *Interface) ItemName() NamespacedIdent { return i.Name }

func (*Interface) isItem() {}
