package format

import (
	"bytes"

	"pyfmt/internal/diag"
	"pyfmt/internal/lexer"
	"pyfmt/internal/source"
)

// FormatFile runs the full pipeline over one file: lex, rewrite,
// collapse, then the advisory indentation check on the final text.
// Diagnostics from every stage flow into reporter; the returned Result
// always carries the complete output, changed or not.
func FormatFile(fs *source.FileSet, id source.FileID, opts Options, reporter diag.Reporter) Result {
	file := fs.Get(id)
	toks := lexer.ScanAll(file, lexer.Options{Reporter: reporter})

	out, decisions := rewrite(file, toks, opts, reporter)

	cur := file
	curToks := toks
	relex := func(content []byte) {
		// Intermediate stages get a fresh virtual file so spans in later
		// decisions and diagnostics index the text they refer to. The
		// relex runs without a reporter: lex-level problems were already
		// reported against the original.
		vid := fs.Add(cur.Path, content, source.FileVirtual)
		cur = fs.Get(vid)
		curToks = lexer.ScanAll(cur, lexer.Options{})
	}

	if opts.Collapse {
		if !bytes.Equal(out, cur.Content) {
			relex(out)
		}
		collapsed, collapseDecisions := collapse(cur, curToks, opts)
		decisions = append(decisions, collapseDecisions...)
		out = collapsed
	}

	if opts.CheckIndent {
		if !bytes.Equal(out, cur.Content) {
			relex(out)
		}
		checkIndent(cur, curToks, opts, reporter)
	}

	return Result{
		Output:    out,
		Changed:   !bytes.Equal(out, file.Content),
		Decisions: decisions,
	}
}

// FormatBytes formats standalone content under the given name and
// returns the result together with any diagnostics.
func FormatBytes(name string, content []byte, opts Options) (Result, *diag.Bag) {
	fs := source.NewFileSet()
	id := fs.AddVirtual(name, content)
	bag := diag.NewBag(diag.DefaultCap)
	res := FormatFile(fs, id, opts, diag.BagReporter{Bag: bag})
	return res, bag
}
