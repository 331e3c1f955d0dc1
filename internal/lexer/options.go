package lexer

import "swipc/internal/diag"

// Options configures a Lexer. A nil Reporter drops lexical diagnostics but
// scanning continues.
type Options struct {
	Reporter diag.Reporter
}

func (lx *Lexer) report(d diag.Diagnostic) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(d)
	}
}
