package ast

import (
	"strings"

	"swipc/internal/diag"
	"swipc/internal/source"
)

// StructField is one named component of a struct.
type StructField struct {
	Name string
	Type Nominal
	Span source.Span
}

// Struct is an aggregate named type. Field order is significant: it defines
// the wire layout.
type Struct struct {
	Name          NamespacedIdent
	IsLargeData   bool
	PreferredMode BufferTransferMode
	HasPreferred  bool
	Fields        []StructField
	Span          source.Span
}

// NewStruct validates and builds a struct. It enforces field-name
// uniqueness (one diagnostic per duplicate pair, primary on the duplicate,
// secondary on the original) and marker combinability (at most one
// transfer mode preference; LargeData may coexist).
func NewStruct(name NamespacedIdent, fields []StructField, markers []StructMarker, span source.Span) (*Struct, []diag.Diagnostic) {
	var diags []diag.Diagnostic

	seen := make(map[string]int, len(fields))
	for i, f := range fields {
		if prev, ok := seen[f.Name]; ok {
			diags = append(diags,
				diag.New(diag.SevError, diag.MdlDuplicateField, f.Span,
					"duplicate struct field `"+f.Name+"`").
					WithSecondary(fields[prev].Span, "previously defined here"))
			continue
		}
		seen[f.Name] = i
	}

	s := &Struct{Name: name, Fields: fields, Span: span}

	var prefs []StructMarker
	for _, m := range markers {
		switch m.Kind {
		case MarkerLargeData:
			s.IsLargeData = true
		case MarkerPrefersTransferMode:
			prefs = append(prefs, m)
		}
	}
	switch {
	case len(prefs) == 1:
		s.PreferredMode = prefs[0].Mode
		s.HasPreferred = true
	case len(prefs) > 1:
		names := make([]string, len(prefs))
		d := diag.Diagnostic{
			Severity: diag.SevError,
			Code:     diag.MdlConflictingMarkers,
			Message:  "no more than one transfer mode preference marker may be used",
		}
		for i, p := range prefs {
			names[i] = p.String()
			d.Labels = append(d.Labels, diag.Label{Style: diag.LabelPrimary, Span: p.Span})
		}
		d.Message += "; found " + strings.Join(names, ", ")
		diags = append(diags, d)
	}

	if diags != nil {
		return nil, diags
	}
	return s, nil
}

func (s *Struct) ItemSpan() source.Span { return s.Span }

func (s *Struct) ItemName() NamespacedIdent { return s.Name }

func (*Struct) isItem() {}
