package lexer

import (
	"pyfmt/internal/diag"
	"pyfmt/internal/source"
)

// Options configures a Lexer. The Reporter may be nil, in which case
// diagnostics are dropped but lexing continues.
type Options struct {
	Reporter diag.Reporter
}

func (lx *Lexer) warn(code diag.Code, sp source.Span, msg string) {
	if lx.opts.Reporter != nil {
		diag.ReportWarning(lx.opts.Reporter, code, sp, msg).Emit()
	}
}
