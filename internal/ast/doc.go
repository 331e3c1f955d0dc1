// Package ast holds the typed model of one parsed definition file.
//
// Every node is an immutable value carrying the source.Span of its defining
// syntax. Aggregate nodes are produced through validating constructors
// (NewStruct, NewEnum, ...) that enforce the structural invariants —
// field/arm name uniqueness, marker combinability, value ranges — and
// return diagnostics instead of a node when they fail. The model is acyclic
// by construction and safe to share across goroutines once built.
package ast
