package lexer

import (
	"pyfmt/internal/token"
)

// scanNumber consumes a numeric literal with maximal munch. The
// formatter never interprets the value, so the scan accepts decimal,
// float, exponent, hex/octal/binary and underscore-grouped forms
// without validating them.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()

	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		switch {
		case isDec(b) || b == '_' || b == '.':
			lx.cursor.Bump()
		case b == 'e' || b == 'E':
			// Exponent may carry a sign; otherwise it is a hex digit or
			// a trailing identifier-ish byte, still consumed.
			lx.cursor.Bump()
			if b2 := lx.cursor.Peek(); b2 == '+' || b2 == '-' {
				lx.cursor.Bump()
			}
		case (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z'):
			// 0x1F, 0b10, 0o17, 1_000j and similar.
			lx.cursor.Bump()
		default:
			sp := lx.cursor.SpanFrom(start)
			return token.Token{Kind: token.Number, Span: sp, Text: lx.text(sp)}
		}
	}

	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: token.Number, Span: sp, Text: lx.text(sp)}
}
