package lexer

import (
	"pyfmt/internal/diag"
	"pyfmt/internal/token"
)

// scanOperatorOrPunct scans operators, brackets and punctuation with
// maximal munch. Unknown bytes become an Invalid token with a warning;
// their text is preserved so output stays byte-faithful.
func (lx *Lexer) scanOperatorOrPunct() token.Token {
	start := lx.cursor.Mark()

	mk := func(kind token.Kind) token.Token {
		sp := lx.cursor.SpanFrom(start)
		return token.Token{Kind: kind, Span: sp, Text: lx.text(sp)}
	}

	// Three-byte operators first.
	switch {
	case lx.try3('*', '*', '='):
		return mk(token.StarStarAssign)
	case lx.try3('/', '/', '='):
		return mk(token.SlashSlashAssign)
	case lx.try3('<', '<', '='):
		return mk(token.ShlAssign)
	case lx.try3('>', '>', '='):
		return mk(token.ShrAssign)
	case lx.try3('.', '.', '.'):
		return mk(token.Ellipsis)
	}

	// Two-byte operators.
	switch {
	case lx.try2('*', '*'):
		return mk(token.StarStar)
	case lx.try2('/', '/'):
		return mk(token.SlashSlash)
	case lx.try2('<', '<'):
		return mk(token.Shl)
	case lx.try2('>', '>'):
		return mk(token.Shr)
	case lx.try2('<', '='):
		return mk(token.LtEq)
	case lx.try2('>', '='):
		return mk(token.GtEq)
	case lx.try2('=', '='):
		return mk(token.EqEq)
	case lx.try2('!', '='):
		return mk(token.BangEq)
	case lx.try2('-', '>'):
		return mk(token.Arrow)
	case lx.try2(':', '='):
		return mk(token.ColonAssign)
	case lx.try2('+', '='):
		return mk(token.PlusAssign)
	case lx.try2('-', '='):
		return mk(token.MinusAssign)
	case lx.try2('*', '='):
		return mk(token.StarAssign)
	case lx.try2('/', '='):
		return mk(token.SlashAssign)
	case lx.try2('%', '='):
		return mk(token.PercentAssign)
	case lx.try2('&', '='):
		return mk(token.AmpAssign)
	case lx.try2('|', '='):
		return mk(token.PipeAssign)
	case lx.try2('^', '='):
		return mk(token.CaretAssign)
	case lx.try2('@', '='):
		return mk(token.AtAssign)
	}

	b := lx.cursor.Bump()
	switch b {
	case '(':
		return mk(token.LParen)
	case ')':
		return mk(token.RParen)
	case '[':
		return mk(token.LBracket)
	case ']':
		return mk(token.RBracket)
	case '{':
		return mk(token.LBrace)
	case '}':
		return mk(token.RBrace)
	case ',':
		return mk(token.Comma)
	case ':':
		return mk(token.Colon)
	case ';':
		return mk(token.Semicolon)
	case '.':
		return mk(token.Dot)
	case '@':
		return mk(token.At)
	case '\\':
		// A backslash-newline pair is trivia; a stray backslash is a
		// continuation marker the rewriter treats as line-final.
		return mk(token.Backslash)
	case '+':
		return mk(token.Plus)
	case '-':
		return mk(token.Minus)
	case '*':
		return mk(token.Star)
	case '/':
		return mk(token.Slash)
	case '%':
		return mk(token.Percent)
	case '&':
		return mk(token.Amp)
	case '|':
		return mk(token.Pipe)
	case '^':
		return mk(token.Caret)
	case '~':
		return mk(token.Tilde)
	case '<':
		return mk(token.Lt)
	case '>':
		return mk(token.Gt)
	case '=':
		return mk(token.Assign)
	}

	// Unknown byte. Consume the full rune so UTF-8 stays intact.
	if b >= utf8RuneSelf {
		lx.cursor.Reset(start)
		lx.bumpRune()
	}
	sp := lx.cursor.SpanFrom(start)
	tok := token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
	lx.warn(diag.LexUnknownChar, sp, "unknown character "+tok.Text)
	return tok
}
