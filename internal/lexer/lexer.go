package lexer

import (
	"pyfmt/internal/source"
	"pyfmt/internal/token"
)

// Lexer produces significant tokens with attached leading trivia from a
// single source file. The stream is finite and non-restartable; after
// EOF every call returns EOF again.
type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	look   *token.Token   // one-token lookahead buffer
	hold   []token.Trivia // accumulated leading trivia
	done   bool
}

// New creates a lexer over the file contents.
func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
	}
}

// Next returns the next significant token with its leading trivia.
// EOF carries any trailing trivia so the token stream reproduces the
// file byte-for-byte.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}

	lx.collectLeadingTrivia()

	if lx.cursor.EOF() {
		tok := token.Token{
			Kind: token.EOF,
			Span: lx.emptySpan(),
		}
		if !lx.done {
			tok.Leading = lx.hold
			lx.hold = nil
			lx.done = true
		}
		return tok
	}

	ch := lx.cursor.Peek()
	var tok token.Token

	switch {
	case ch == '\'' || ch == '"':
		tok = lx.scanString(lx.cursor.Mark())

	case isIdentStartByte(ch):
		// May still turn into a string: r"...", f'...', rb"...".
		tok = lx.scanIdentOrKeyword()

	case ch >= utf8RuneSelf && lx.identStartsHere():
		tok = lx.scanIdentOrKeyword()

	case isDec(ch):
		tok = lx.scanNumber()

	case ch == '.' && lx.isNumberAfterDot():
		tok = lx.scanNumber()

	default:
		tok = lx.scanOperatorOrPunct()
	}

	tok.Leading = lx.hold
	lx.hold = nil
	return tok
}

// Peek returns the next token without consuming it.
func (lx *Lexer) Peek() token.Token {
	t := lx.Next()
	lx.look = &t
	return t
}

// ScanAll drains a fresh lexer over the file, returning every token up
// to and including EOF.
func ScanAll(file *source.File, opts Options) []token.Token {
	lx := New(file, opts)
	var out []token.Token
	for {
		tok := lx.Next()
		out = append(out, tok)
		if tok.Kind == token.EOF {
			return out
		}
	}
}

func (lx *Lexer) identStartsHere() bool {
	r, _ := lx.peekRune()
	return isIdentStartRune(r)
}

func (lx *Lexer) emptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}

func (lx *Lexer) text(sp source.Span) string {
	return string(lx.file.Content[sp.Start:sp.End])
}
