package diagfmt

// PrettyOpts configures pretty-printing of diagnostics.
type PrettyOpts struct {
	Color bool
	// ShowLabels controls whether per-label source snippets are printed
	// under the header line.
	ShowLabels bool
}

// JSONOpts configures JSON output of diagnostics.
type JSONOpts struct {
	// IncludePositions adds resolved line/col pairs next to byte offsets.
	IncludePositions bool
}
