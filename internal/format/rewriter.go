package format

import (
	"bytes"
	"strings"

	"pyfmt/internal/diag"
	"pyfmt/internal/source"
	"pyfmt/internal/token"
)

// rewriter walks the token stream once and emits the rewritten text:
// bracket padding, statement terminators, f-string prefix cleanup.
// Nesting depth comes from bracket token kinds only; string and comment
// content is opaque by construction.
type rewriter struct {
	file     *source.File
	toks     []token.Token
	opts     Options
	reporter diag.Reporter

	out       bytes.Buffer
	decisions []Decision

	depth int
	// skipLine, when nonzero, passes everything through verbatim until
	// the next physical line. Set on malformed nesting.
	skipLine uint32
	// lineFirst is the first significant token of the current logical
	// line (reset on a physical newline at depth 0).
	lineFirst token.Token
}

func rewrite(file *source.File, toks []token.Token, opts Options, reporter diag.Reporter) ([]byte, []Decision) {
	r := &rewriter{file: file, toks: toks, opts: opts, reporter: reporter}
	r.run()
	return r.out.Bytes(), r.decisions
}

func (r *rewriter) run() {
	var prev token.Token
	havePrev := false

	for i, tok := range r.toks {
		if tok.Kind == token.EOF {
			for _, tr := range tok.Leading {
				r.out.WriteString(tr.Text)
			}
			break
		}

		line := r.file.LineOf(tok.Span.Start)
		if r.skipLine != 0 && line > r.skipLine {
			r.skipLine = 0
		}
		if !havePrev || (r.depth == 0 && startsNewLine(tok)) {
			r.lineFirst = tok
		}

		r.emitLeading(prev, tok, havePrev && line == r.file.LineOf(prev.Span.End-spanBack(prev)))
		r.emitToken(i, tok, prev, havePrev)

		r.bumpDepth(tok)
		r.maybeTerminate(i, tok)

		prev = tok
		havePrev = true
	}
}

// spanBack guards against zero-length spans when resolving the line of
// a token's last byte.
func spanBack(t token.Token) uint32 {
	if t.Span.Len() == 0 {
		return 0
	}
	return 1
}

func startsNewLine(tok token.Token) bool {
	for _, tr := range tok.Leading {
		if tr.Kind == token.TriviaNewline {
			return true
		}
	}
	return false
}

// emitLeading writes the trivia before tok, normalizing the gap inside
// a non-empty bracket pair to exactly one space when both sides share a
// line and nothing but spaces sits between them.
func (r *rewriter) emitLeading(prev, tok token.Token, sameLine bool) {
	verbatim := func() {
		for _, tr := range tok.Leading {
			r.out.WriteString(tr.Text)
		}
	}

	if r.skipLine != 0 || !sameLine || !onlySpaces(tok.Leading) {
		verbatim()
		return
	}

	switch {
	case prev.Kind.IsOpenBracket() && tok.Kind != prev.Kind.MatchingBracket():
		r.padGap(prev, tok)
	case tok.Kind.IsCloseBracket() && !prev.Kind.IsOpenBracket():
		r.padGap(prev, tok)
	default:
		verbatim()
	}
}

func (r *rewriter) padGap(prev, tok token.Token) {
	gap := ""
	for _, tr := range tok.Leading {
		gap += tr.Text
	}
	r.out.WriteByte(' ')
	if gap != " " {
		r.decide(Decision{
			Kind:    DecisionPad,
			Span:    source.Span{File: tok.Span.File, Start: prev.Span.End, End: tok.Span.Start},
			Applied: true,
		})
	}
}

func onlySpaces(leading []token.Trivia) bool {
	for _, tr := range leading {
		if tr.Kind != token.TriviaSpace {
			return false
		}
	}
	return true
}

// emitToken writes the token text, stripping redundant f prefixes and
// stray terminators on directive lines.
func (r *rewriter) emitToken(i int, tok, prev token.Token, havePrev bool) {
	if r.skipLine != 0 {
		r.out.WriteString(tok.Text)
		return
	}

	// A trailing ";" is dropped on directive lines, and after a block
	// colon (the ":;" artifact).
	if tok.Kind == token.Semicolon && r.lineEndsAfter(i) {
		if r.directiveLine() || (havePrev && prev.Kind == token.Colon) {
			r.decide(Decision{Kind: DecisionTerminator, Span: tok.Span, Applied: true, Reason: "stripped"})
			return
		}
	}

	if tok.Kind == token.String && r.opts.StripFStringPrefix && tok.IsFString() {
		if stripped, ok := r.stripFPrefix(tok); ok {
			r.out.WriteString(stripped)
			return
		}
	}

	r.out.WriteString(tok.Text)
}

// stripFPrefix removes f/F from the prefix of an f-string that has no
// {} placeholders. The noqa escape hatch from the original linter rule
// (F541) is honored per line.
func (r *rewriter) stripFPrefix(tok token.Token) (string, bool) {
	body := tok.StringBody()
	if strings.ContainsAny(body, "{}") {
		return "", false
	}

	line := r.file.GetLine(r.file.LineOf(tok.Span.Start))
	if strings.Contains(line, "noqa") && strings.Contains(line, "F541") {
		r.decide(Decision{Kind: DecisionFString, Span: tok.Span, Applied: false, Reason: "noqa"})
		return "", false
	}

	prefix := tok.StringPrefix()
	newPrefix := strings.Map(func(c rune) rune {
		if c == 'f' || c == 'F' {
			return -1
		}
		return c
	}, prefix)

	r.decide(Decision{Kind: DecisionFString, Span: tok.Span, Applied: true})
	return newPrefix + tok.Text[len(prefix):], true
}

// bumpDepth tracks nesting and switches to pass-through for the rest of
// the line when a close bracket has no matching open.
func (r *rewriter) bumpDepth(tok token.Token) {
	switch {
	case tok.Kind.IsOpenBracket():
		r.depth++
	case tok.Kind.IsCloseBracket():
		r.depth--
		if r.depth < 0 {
			r.depth = 0
			if r.skipLine == 0 {
				r.skipLine = r.file.LineOf(tok.Span.Start)
				r.decide(Decision{Kind: DecisionTerminator, Span: tok.Span, Applied: false, Reason: "unbalanced brackets"})
				if r.reporter != nil {
					diag.ReportWarning(r.reporter, diag.FmtUnbalancedBrackets, tok.Span,
						"closing bracket without a matching open; line left unchanged").Emit()
				}
			}
		}
	}
}

// maybeTerminate appends ";" after the last token of a complete
// statement at depth 0. The terminator lands before any trailing
// comment because comments ride as leading trivia of the next token.
func (r *rewriter) maybeTerminate(i int, tok token.Token) {
	if r.skipLine != 0 || !r.lineEndsAfter(i) {
		return
	}
	if r.depth > 0 {
		return
	}

	switch tok.Kind {
	case token.Comma, token.Colon, token.Semicolon, token.Dot, token.Backslash, token.EOF, token.Invalid:
		return
	}
	if tok.Kind.IsContinuation() || tok.Kind.IsOpenBracket() {
		return
	}
	if r.directiveLine() {
		return
	}

	// Docstring-style lines and the closing line of a multi-line string
	// keep their trailing characters untouched; so does the truncated
	// trailing unit of an unterminated string.
	if tok.Kind == token.String {
		if !tok.IsTerminatedString() {
			r.decide(Decision{Kind: DecisionTerminator, Span: tok.Span, Applied: false, Reason: "unterminated string"})
			return
		}
		if r.file.LineOf(tok.Span.Start) != r.file.LineOf(tok.Span.End-1) {
			return
		}
	}
	if r.lineFirst.Kind == token.String && r.lineFirst.IsTripleString() {
		return
	}

	// A signature-closing ")" directly above a more-indented line opens
	// a block; block headers take no terminator.
	if tok.Kind == token.RParen {
		if next, ok := r.nextToken(i); ok {
			curIndent := lineIndent(r.file.GetLine(r.file.LineOf(tok.Span.Start)))
			nextIndent := lineIndent(r.file.GetLine(r.file.LineOf(next.Span.Start)))
			if nextIndent > curIndent {
				r.decide(Decision{Kind: DecisionTerminator, Span: tok.Span, Applied: false, Reason: "block header"})
				return
			}
		}
	}

	r.out.WriteByte(';')
	r.decide(Decision{Kind: DecisionTerminator, Span: tok.Span, Applied: true})
}

// lineEndsAfter reports whether the statement line ends after token i:
// the next token starts beyond a real newline (a backslash line join is
// a continuation), or the stream ends.
func (r *rewriter) lineEndsAfter(i int) bool {
	if i+1 >= len(r.toks) {
		return true
	}
	next := r.toks[i+1]
	for _, tr := range next.Leading {
		switch tr.Kind {
		case token.TriviaLineJoin:
			return false
		case token.TriviaNewline:
			return true
		}
	}
	return next.Kind == token.EOF
}

func (r *rewriter) nextToken(i int) (token.Token, bool) {
	if i+1 < len(r.toks) && r.toks[i+1].Kind != token.EOF {
		return r.toks[i+1], true
	}
	return token.Token{}, false
}

// directiveLine reports whether the current logical line starts with a
// flow-control directive or a decorator marker.
func (r *rewriter) directiveLine() bool {
	return r.lineFirst.Kind.IsDirective() || r.lineFirst.Kind == token.At
}

func (r *rewriter) decide(d Decision) {
	r.decisions = append(r.decisions, d)
}

// lineIndent counts leading whitespace characters, tabs included, the
// same way the indentation checker does.
func lineIndent(line string) int {
	return len(line) - len(strings.TrimLeft(line, " \t"))
}
