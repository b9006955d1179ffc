package format

import (
	"strings"

	"pyfmt/internal/diag"
	"pyfmt/internal/source"
	"pyfmt/internal/token"
)

// indentChecker validates block indentation without changing anything.
// It keeps a stack of active indent levels: a line ending in ":" (or
// the ":;" the rewriter leaves on block headers) must be followed by
// exactly one more level, and every dedent must land on a level already
// on the stack.
type indentChecker struct {
	file     *source.File
	opts     Options
	reporter diag.Reporter

	stack []int
	// insideString marks lines strictly inside a multi-line string.
	insideString map[uint32]bool
}

func checkIndent(file *source.File, toks []token.Token, opts Options, reporter diag.Reporter) {
	c := &indentChecker{
		file:         file,
		opts:         opts,
		reporter:     reporter,
		stack:        []int{0},
		insideString: make(map[uint32]bool),
	}
	for _, tok := range toks {
		if tok.Kind != token.String || tok.Span.Len() == 0 {
			continue
		}
		first := file.LineOf(tok.Span.Start)
		last := file.LineOf(tok.Span.End - 1)
		for l := first + 1; l <= last; l++ {
			c.insideString[l] = true
		}
	}
	c.run()
}

func (c *indentChecker) run() {
	numLines := uint32(c.file.NumLines())
	prevOpensBlock := false

	for line := uint32(1); line <= numLines; line++ {
		if c.insideString[line] {
			continue
		}

		text := c.file.GetLine(line)
		stripped := strings.TrimLeft(text, " \t")
		if stripped == "" || strings.HasPrefix(stripped, "#") {
			continue
		}

		indentText := text[:len(text)-len(stripped)]
		indent := len(indentText)
		c.checkTabs(line, indentText)

		top := c.stack[len(c.stack)-1]
		switch {
		case prevOpensBlock:
			expected := top + c.opts.IndentWidth
			if indent != expected {
				c.warn(diag.IndentUnexpected, line, indent,
					"expected indent of %d after block header, got %d", expected, indent)
			}
			if indent > top {
				c.stack = append(c.stack, indent)
			}
		case indent < top:
			for len(c.stack) > 1 && c.stack[len(c.stack)-1] > indent {
				c.stack = c.stack[:len(c.stack)-1]
			}
			if c.stack[len(c.stack)-1] != indent {
				c.warn(diag.IndentNoOuterMatch, line, indent,
					"dedent to %d matches no enclosing block", indent)
			}
		}

		trimmed := strings.TrimRight(stripped, " \t")
		prevOpensBlock = strings.HasSuffix(trimmed, ":") || strings.HasSuffix(trimmed, ":;")
	}
}

func (c *indentChecker) checkTabs(line uint32, indentText string) {
	if strings.Contains(indentText, "\t") && strings.Contains(indentText, " ") {
		c.warn(diag.IndentTabSpaceMixed, line, len(indentText),
			"indentation mixes tabs and spaces")
	}
}

func (c *indentChecker) warn(code diag.Code, line uint32, indent int, format string, args ...any) {
	if c.reporter == nil {
		return
	}
	start := c.file.LineStart(line)
	span := source.Span{File: c.file.ID, Start: start, End: start + uint32(indent)}
	diag.ReportWarningf(c.reporter, code, span, format, args...).Emit()
}
