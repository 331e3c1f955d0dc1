// Package diag defines the diagnostic model shared by the lexer, the
// parser, and the model constructors.
//
// Diagnostic is the central record: a severity, a stable code, a message,
// and an ordered list of labels. A label ties a message to a source span
// and is either primary (the span the diagnostic is about) or secondary
// (context: "previously defined here", "in struct `X`"). Diagnostics are
// plain values — they compose, they are never thrown, and they can be
// rendered later by internal/diagfmt with access to the source.FileSet.
//
// Producers emit through a Reporter so storage stays decoupled; BagReporter
// aggregates into a Bag, which supports sorting, merging, and a limit.
package diag
