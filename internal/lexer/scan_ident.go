package lexer

import (
	"pyfmt/internal/token"
)

// scanIdentOrKeyword scans an identifier, resolving keywords via the
// token table. An identifier that is a valid string prefix immediately
// followed by a quote re-scans as a string literal.
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Mark()

	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b < utf8RuneSelf {
			if !isIdentContinueByte(b) {
				break
			}
			lx.cursor.Bump()
			continue
		}
		r, _ := lx.peekRune()
		if !isIdentContinueRune(r) {
			break
		}
		lx.bumpRune()
	}

	sp := lx.cursor.SpanFrom(start)
	text := lx.text(sp)

	// r"...", f'...', rb"..." and friends are string literals.
	if isStringPrefix(text) {
		if b := lx.cursor.Peek(); b == '\'' || b == '"' {
			return lx.scanString(start)
		}
	}

	if kind, ok := token.LookupKeyword(text); ok {
		return token.Token{Kind: kind, Span: sp, Text: text}
	}
	return token.Token{Kind: token.Ident, Span: sp, Text: text}
}
