package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"pyfmt/internal/diag"
	"pyfmt/internal/source"
)

// Pretty renders diagnostics in a human-readable form, one block per
// diagnostic:
//
//	<path>:<line>:<col>: <SEV> <CODE>: <message>
//	  <source line>
//	  ^~~~
//
// The bag is expected to be sorted. Notes follow the same shape,
// indented under their diagnostic.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	sevColor := map[diag.Severity]*color.Color{
		diag.SevInfo:    color.New(color.FgCyan),
		diag.SevWarning: color.New(color.FgYellow),
		diag.SevError:   color.New(color.FgRed, color.Bold),
	}

	paint := func(c *color.Color, s string) string {
		if !opts.Color || c == nil {
			return s
		}
		return c.Sprint(s)
	}

	for _, d := range bag.Items() {
		f := fs.Get(d.Primary.File)
		start, _ := fs.Resolve(d.Primary)

		fmt.Fprintf(w, "%s: %s %s: %s\n",
			paint(color.New(color.Bold), fmt.Sprintf("%s:%d:%d", f.Path, start.Line, start.Col)),
			paint(sevColor[d.Severity], d.Severity.String()),
			d.Code.ID(),
			d.Message,
		)
		writeContext(w, f, d.Primary, start, opts)

		if opts.ShowNotes {
			for _, n := range d.Notes {
				nf := fs.Get(n.Span.File)
				nstart, _ := fs.Resolve(n.Span)
				fmt.Fprintf(w, "  note: %s:%d:%d: %s\n", nf.Path, nstart.Line, nstart.Col, n.Msg)
			}
		}
	}
}

// writeContext prints the source line with a caret marker under the
// span. Tabs in the prefix stay tabs so the marker lines up in any
// terminal; everything else becomes spaces.
func writeContext(w io.Writer, f *source.File, span source.Span, start source.LineCol, opts PrettyOpts) {
	line := f.GetLine(start.Line)
	if line == "" && span.Empty() {
		return
	}
	fmt.Fprintf(w, "  %s\n", line)

	prefix := line[:min(int(start.Col-1), len(line))]
	var pad strings.Builder
	for _, r := range prefix {
		if r == '\t' {
			pad.WriteByte('\t')
		} else {
			pad.WriteString(strings.Repeat(" ", runewidth.RuneWidth(r)))
		}
	}

	markLen := int(span.Len())
	if rest := len(line) - len(prefix); markLen > rest {
		markLen = rest
	}
	marker := "^"
	if markLen > 1 {
		marker += strings.Repeat("~", markLen-1)
	}
	if opts.Color {
		marker = color.New(color.FgGreen, color.Bold).Sprint(marker)
	}
	fmt.Fprintf(w, "  %s%s\n", pad.String(), marker)
}
