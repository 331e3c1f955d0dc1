package diag

import (
	"swipc/internal/source"
)

// LabelStyle distinguishes the span a diagnostic is about from spans that
// add context to it.
type LabelStyle uint8

const (
	LabelPrimary LabelStyle = iota
	LabelSecondary
)

// Label attaches a message to a source span. Labels are ordered; renderers
// draw carets under primary labels and underlines under secondary ones.
type Label struct {
	Style LabelStyle
	Span  source.Span
	Msg   string
}

// Diagnostic is a plain value describing one finding. Diagnostics are
// additive: producers collect them into a Bag, they are never thrown.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Labels   []Label
}

// PrimarySpan returns the span of the first primary label, falling back to
// the first label of any style, then the zero span.
func (d Diagnostic) PrimarySpan() source.Span {
	for _, l := range d.Labels {
		if l.Style == LabelPrimary {
			return l.Span
		}
	}
	if len(d.Labels) > 0 {
		return d.Labels[0].Span
	}
	return source.Span{}
}

// WithPrimary appends a primary label and returns the updated diagnostic.
func (d Diagnostic) WithPrimary(sp source.Span, msg string) Diagnostic {
	d.Labels = append(d.Labels[:len(d.Labels):len(d.Labels)], Label{Style: LabelPrimary, Span: sp, Msg: msg})
	return d
}

// WithSecondary appends a secondary label and returns the updated diagnostic.
func (d Diagnostic) WithSecondary(sp source.Span, msg string) Diagnostic {
	d.Labels = append(d.Labels[:len(d.Labels):len(d.Labels)], Label{Style: LabelSecondary, Span: sp, Msg: msg})
	return d
}
