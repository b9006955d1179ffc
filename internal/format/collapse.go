package format

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"pyfmt/internal/source"
	"pyfmt/internal/token"
)

// collapse flattens multi-line bracketed blocks that fit the length
// budget. Bracket matching, comment and string positions all come from
// the token stream, so brackets inside string literals can never start
// or end a buffered span.
func collapse(file *source.File, toks []token.Token, opts Options) ([]byte, []Decision) {
	c := &collapser{file: file, opts: opts}
	c.index(toks)
	return c.run(), c.decisions
}

type bracketPair struct {
	open  token.Token
	close token.Token
}

type collapser struct {
	file *source.File
	opts Options

	// pairs holds every matched bracket pair keyed by the line the
	// opening bracket starts on.
	pairs map[uint32][]bracketPair
	// commentLines maps a line to the start offset of its comment.
	commentLines map[uint32]uint32
	// stringCover marks lines covered by a multi-line string token.
	stringCover map[uint32]bool

	decisions []Decision
}

func (c *collapser) index(toks []token.Token) {
	c.pairs = make(map[uint32][]bracketPair)
	c.commentLines = make(map[uint32]uint32)
	c.stringCover = make(map[uint32]bool)

	var stack []token.Token
	for _, tok := range toks {
		for _, tr := range tok.Leading {
			if tr.Kind == token.TriviaLineComment {
				c.commentLines[c.file.LineOf(tr.Span.Start)] = tr.Span.Start
			}
		}

		switch {
		case tok.Kind.IsOpenBracket():
			stack = append(stack, tok)
		case tok.Kind.IsCloseBracket():
			if len(stack) == 0 {
				continue // malformed; the rewriter already warned
			}
			open := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if open.Kind.MatchingBracket() != tok.Kind {
				continue
			}
			line := c.file.LineOf(open.Span.Start)
			c.pairs[line] = append(c.pairs[line], bracketPair{open: open, close: tok})
		case tok.Kind == token.String:
			if tok.Span.Len() == 0 {
				continue
			}
			first := c.file.LineOf(tok.Span.Start)
			last := c.file.LineOf(tok.Span.End - 1)
			if last == first {
				continue
			}
			for l := first; l <= last; l++ {
				c.stringCover[l] = true
			}
		}
	}
}

func (c *collapser) run() []byte {
	numLines := uint32(c.file.NumLines())
	var out []string

	for line := uint32(1); line <= numLines; {
		pair, ok := c.candidate(line)
		if !ok {
			out = append(out, c.file.GetLine(line))
			line++
			continue
		}

		closeLine := c.file.LineOf(pair.close.Span.Start)
		span := pair.open.Span.Cover(pair.close.Span)

		if reason, ok := c.collapsible(pair, line, closeLine); !ok {
			c.decisions = append(c.decisions, Decision{Kind: DecisionCollapse, Span: span, Applied: false, Reason: reason})
			for l := line; l <= closeLine; l++ {
				out = append(out, c.file.GetLine(l))
			}
			line = closeLine + 1
			continue
		}

		flat := c.flatten(pair, line, closeLine)
		if runewidth.StringWidth(flat) > c.opts.MaxLineLen {
			c.decisions = append(c.decisions, Decision{Kind: DecisionCollapse, Span: span, Applied: false, Reason: "exceeds length budget"})
			for l := line; l <= closeLine; l++ {
				out = append(out, c.file.GetLine(l))
			}
			line = closeLine + 1
			continue
		}

		c.decisions = append(c.decisions, Decision{Kind: DecisionCollapse, Span: span, Applied: true})
		out = append(out, flat)
		line = closeLine + 1
	}

	joined := strings.Join(out, "\n")
	if n := len(c.file.Content); n > 0 && c.file.Content[n-1] == '\n' {
		joined += "\n"
	}
	return []byte(joined)
}

// candidate returns the rightmost bracket pair opened on the line whose
// close sits on a later line.
func (c *collapser) candidate(line uint32) (bracketPair, bool) {
	var best bracketPair
	found := false
	for _, p := range c.pairs[line] {
		if c.file.LineOf(p.close.Span.Start) == line {
			continue
		}
		if !found || p.open.Span.Start > best.open.Span.Start {
			best = p
			found = true
		}
	}
	return best, found
}

// collapsible rejects spans with interior comments (anything before the
// closing line's bracket) or embedded multi-line strings, which cannot
// survive flattening.
func (c *collapser) collapsible(pair bracketPair, line, closeLine uint32) (string, bool) {
	for l := line; l < closeLine; l++ {
		if _, ok := c.commentLines[l]; ok {
			return "interior comment", false
		}
	}
	if off, ok := c.commentLines[closeLine]; ok && off < pair.close.Span.Start {
		return "interior comment", false
	}
	for l := line + 1; l <= closeLine; l++ {
		if c.stringCover[l] {
			return "multi-line string", false
		}
	}
	return "", true
}

func (c *collapser) flatten(pair bracketPair, line, closeLine uint32) string {
	openCol := pair.open.Span.End - c.file.LineStart(line)
	closeCol := pair.close.Span.Start - c.file.LineStart(closeLine)

	firstLine := c.file.GetLine(line)
	lastLine := c.file.GetLine(closeLine)

	prefix := firstLine[:openCol]

	var pieces []string
	appendPiece := func(s string) {
		s = strings.TrimSpace(s)
		if s != "" {
			pieces = append(pieces, s)
		}
	}
	appendPiece(firstLine[openCol:])
	for l := line + 1; l < closeLine; l++ {
		appendPiece(c.file.GetLine(l))
	}
	appendPiece(lastLine[:closeCol])

	content := strings.Join(pieces, " ")
	suffix := strings.TrimRight(lastLine[closeCol+1:], " \t")

	if content == "" {
		return prefix + pair.close.Text + suffix
	}
	return prefix + " " + content + " " + pair.close.Text + suffix
}
