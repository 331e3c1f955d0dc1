package ast

import "swipc/internal/source"

// TypeAlias is a named synonym for a nominal type. The right-hand side is
// taken lexically; resolution across declarations is the business of
// downstream consumers.
type TypeAlias struct {
	Name       NamespacedIdent
	Referenced Nominal
	Span       source.Span
}

func (a *TypeAlias) ItemSpan() source.Span { return a.Span }

func (a *TypeAlias) ItemName() NamespacedIdent { return a.Name }

func (*TypeAlias) isItem() {}
