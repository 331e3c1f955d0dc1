package diag

import "swipc/internal/source"

func New(sev Severity, code Code, primary source.Span, msg string) Diagnostic {
	return Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  msg,
		Labels:   []Label{{Style: LabelPrimary, Span: primary}},
	}
}

func NewError(code Code, primary source.Span, msg string) Diagnostic {
	return New(SevError, code, primary, msg)
}

func NewWarning(code Code, primary source.Span, msg string) Diagnostic {
	return New(SevWarning, code, primary, msg)
}

func NewBug(code Code, primary source.Span, msg string) Diagnostic {
	return New(SevBug, code, primary, msg)
}
