package token

import (
	"strings"

	"pyfmt/internal/source"
)

// Token represents a single source token with its location and the
// trivia that precedes it. Unlike most compilers, the formatter also
// attaches leading trivia to EOF so that the token stream reproduces
// the input byte-for-byte.
type Token struct {
	Kind    Kind
	Span    source.Span
	Text    string
	Leading []Trivia
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }

// StringPrefix returns the letter prefix of a String token ("f", "rb",
// "", ...). Returns "" for non-string tokens.
func (t Token) StringPrefix() string {
	if t.Kind != String {
		return ""
	}
	for i := 0; i < len(t.Text); i++ {
		if t.Text[i] == '\'' || t.Text[i] == '"' {
			return t.Text[:i]
		}
	}
	return ""
}

// StringQuote returns the opening quote run of a String token: `'`,
// `"`, `'''` or `"""`. Returns "" for non-string tokens.
func (t Token) StringQuote() string {
	if t.Kind != String {
		return ""
	}
	rest := t.Text[len(t.StringPrefix()):]
	if len(rest) == 0 {
		return ""
	}
	q := rest[0]
	if len(rest) >= 3 && rest[1] == q && rest[2] == q {
		return rest[:3]
	}
	return rest[:1]
}

// StringBody returns the text between the quotes. For an unterminated
// string the body extends to the end of the token.
func (t Token) StringBody() string {
	quote := t.StringQuote()
	if quote == "" {
		return ""
	}
	body := t.Text[len(t.StringPrefix())+len(quote):]
	if strings.HasSuffix(body, quote) && len(body) >= len(quote) {
		body = body[:len(body)-len(quote)]
	}
	return body
}

// IsTerminatedString reports whether a String token carries its closing
// quote run. Unterminated strings are the truncated trailing units the
// lexer emits instead of failing.
func (t Token) IsTerminatedString() bool {
	quote := t.StringQuote()
	if quote == "" {
		return false
	}
	inner := t.Text[len(t.StringPrefix()):]
	return len(inner) >= 2*len(quote) && strings.HasSuffix(inner, quote)
}

// IsTripleString reports whether the token is a triple-quoted string.
func (t Token) IsTripleString() bool {
	return len(t.StringQuote()) == 3
}

// IsFString reports whether the string carries an f prefix.
func (t Token) IsFString() bool {
	return strings.ContainsAny(t.StringPrefix(), "fF")
}

// IsRawString reports whether the string carries an r prefix.
func (t Token) IsRawString() bool {
	return strings.ContainsAny(t.StringPrefix(), "rR")
}

// HasNewlineBefore reports whether any leading trivia contains a
// newline, i.e. the token starts a new physical line.
func (t Token) HasNewlineBefore() bool {
	for _, tr := range t.Leading {
		if tr.Kind == TriviaNewline || tr.Kind == TriviaLineJoin {
			return true
		}
	}
	return false
}

// LeadingComment returns the last line comment in the leading trivia,
// if any.
func (t Token) LeadingComment() (Trivia, bool) {
	for i := len(t.Leading) - 1; i >= 0; i-- {
		if t.Leading[i].Kind == TriviaLineComment {
			return t.Leading[i], true
		}
	}
	return Trivia{}, false
}
