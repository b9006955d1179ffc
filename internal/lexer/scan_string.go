package lexer

import (
	"pyfmt/internal/diag"
	"pyfmt/internal/token"
)

// scanString scans a string literal starting at mark, which may precede
// a letter prefix (r, b, u, f) already consumed by the ident scanner.
// The cursor sits on the opening quote.
//
// Quote characters of the other style inside an open string are literal
// text. A backslash always consumes the following byte, so escaped
// quotes never close the literal. Unterminated literals do not fail:
// the remaining text becomes a single String token and a warning is
// reported, which downstream stages treat as an opaque span.
func (lx *Lexer) scanString(start Mark) token.Token {
	q := lx.cursor.Peek()
	triple := false
	if b0, b1, b2, ok := lx.cursor.Peek3(); ok && b0 == q && b1 == q && b2 == q {
		triple = true
		lx.cursor.Bump()
		lx.cursor.Bump()
		lx.cursor.Bump()
	} else {
		lx.cursor.Bump()
	}

	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()

		if b == '\\' {
			lx.cursor.Bump()
			if !lx.cursor.EOF() {
				lx.cursor.Bump()
			}
			continue
		}

		if triple {
			if b == q {
				if lx.try3(q, q, q) {
					return lx.stringToken(start)
				}
				lx.cursor.Bump()
				continue
			}
			lx.cursor.Bump()
			continue
		}

		if b == q {
			lx.cursor.Bump()
			return lx.stringToken(start)
		}
		if b == '\n' {
			// Single-quoted string hit end of line: truncated span ends
			// before the newline so line structure survives.
			sp := lx.cursor.SpanFrom(start)
			lx.warn(diag.LexUnterminatedString, sp, "unterminated string literal")
			return token.Token{Kind: token.String, Span: sp, Text: lx.text(sp)}
		}
		lx.cursor.Bump()
	}

	// EOF without a closing quote: everything left is one trailing unit.
	sp := lx.cursor.SpanFrom(start)
	lx.warn(diag.LexUnterminatedString, sp, "unterminated string literal")
	return token.Token{Kind: token.String, Span: sp, Text: lx.text(sp)}
}

func (lx *Lexer) stringToken(start Mark) token.Token {
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: token.String, Span: sp, Text: lx.text(sp)}
}
